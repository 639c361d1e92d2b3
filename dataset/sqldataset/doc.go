/*
Package sqldataset reads and writes datasets on SQL database tables.

A dataset is stored on a table with an autoincremented id column, that
keeps the order of the records, and a text column for every feature.
Database specifics are provided by an Adapter.
*/
package sqldataset
