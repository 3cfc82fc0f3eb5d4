// Package betterment converts the plain-text rendering of a Betterment
// brokerage statement into structured transactions, and serializes them to
// CSV, QIF or JSONL for import into personal-finance tools.
//
// The core functionalities include:
//   - Line Classification: pure functions that interpret one whitespace
//     tokenized statement line as a transaction fragment (dividend payments,
//     share purchases and sales, dividend reinvestments, advisory fees).
//   - Statement Walking: a small state machine that tracks the current goal
//     and section of the statement, dispatches lines to classifiers, and
//     carries context forward to continuation lines.
//   - Fee Aggregation: a post-pass that nets the per-security advisory fee
//     deductions of a single day into one fee payment per goal.
//   - Serialization: encoders for the tabular CSV format, the QIF investment
//     interchange format (one stream per goal), and pcs-compatible JSONL.
//
// The package operates on already-extracted text: it never opens PDFs or
// spawns processes itself. See the pdftext package for the extraction
// boundary and the cmd package for the `bpc` command-line tool.
package betterment
