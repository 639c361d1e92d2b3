package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in congress's version
	VersionMajor = 0
	// VersionMinor is the minor number in congress's version
	VersionMinor = 1
	// VersionPatch is the patch number in congress's version
	VersionPatch = 0
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of congress",
		Long:  `All software has versions. This is congress's`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version())
		},
	}
}

func version() string {
	return fmt.Sprintf("congress v%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}
