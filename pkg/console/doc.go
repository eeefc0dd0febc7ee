// Package console classifies the process's standard output streams and writes
// text to them in the way each destination can render it.
//
// A destination is classified once into an OutputMode:
//
//	Disk                    regular file, or no usable handle at all
//	GenericStream           pipe, socket or anything else that is not a character device
//	LegacyConsole           console where virtual terminal processing could not be enabled
//	VirtualTerminalConsole  console that interprets ANSI sequences
//
// Files and streams receive UTF-8 bytes. Consoles receive UTF-16 through the
// console API; legacy consoles get SGR sequences (ESC ... 'm') removed first so
// color codes do not show up as garbage.
//
// The classification is owned by a State. Applications build one at startup with
// New and pass it around; Default returns a lazily built process-wide State for
// callers that do not care.
package console
