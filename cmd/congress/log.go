package main

import (
	"fmt"
	"os"
)

type logger bool

func (l logger) Logf(format string, a ...interface{}) {
	if !l {
		return
	}
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintln(os.Stderr, "")
}

func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	rcc.logger().Logf(format, a...)
}

func (rcc *rootCmdConfig) logger() logger {
	return logger(rcc.verbose)
}
