// Package audio plays the stopwatch and clock sound effects.
// It uses the beep library to decode WAV, OGG and MP3 files, caches decoded
// buffers and invalidates them when the files change on disk.
package audio
