// Package batch converts CSV product exports into JSON files.
//
// Processor.ConvertFile validates the fixed "id,name,price" header, turns
// each well-formed row into a {"productId","productName","price"} object,
// and writes the rows as one JSON array. Malformed rows are skipped with a
// warning rather than aborting the file; header mismatches and I/O faults
// surface as ErrInvalidHeader and ErrBatchFailed respectively.
// ConvertFiles fans several conversions out through the async package.
package batch
