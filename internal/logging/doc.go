// Package logging assembles the process logger used by the Language Resource
// Creator tools.
//
// A Logger owns two sinks that share one line format: a log file that rolls
// over once per day (keeping a bounded number of old files) and an optional
// console copy on stdout. Bootstrap builds the logger once per process;
// components obtain named loggers through Named so every line carries the
// "[name]" tag of the code that wrote it.
package logging
