// Package batch runs cipher requests read from JSONC files.
//
// A request file holds an array of objects with the fields op, text, keyword and signature.
// Comments and trailing commas are allowed. Requests are validated and processed concurrently;
// a rejected request is recorded in the report and does not stop the run. Results keep the
// order of the input files and of the requests within them.
package batch
