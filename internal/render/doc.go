// Package render turns a completed event log into human-readable text:
// a chronologically sorted event table, a per-item completion summary,
// and a per-worker ASCII timeline (Gantt view).
//
// Rendering is a pure function of the log and the display parameters;
// rendering the same log twice produces byte-identical output.
package render
