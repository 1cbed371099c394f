// Package core provides the business logic for cleaning cutoff rank exports.
//
// An export is a CSV produced from a PDF of admission cutoff ranks: a title
// block, then data rows interleaved with repeated page headers and page
// number footers. This package turns it into one clean record per
// institute, branch and category.
//
// # Layouts
//
// A [Layout] describes where the fields of one kind of export live. Layouts
// are registered at init time using [Register]:
//
//	core.Register(core.Layout{
//	    Key:        "dcece_pm25",
//	    HeaderRows: 5,
//	    MinCells:   3,
//	    Columns:    core.Columns{Institute: 0, Branch: 2, Category: 3, ...},
//	})
//
// # Pipeline
//
// [Normalizer.Run] processes one file:
//
//  1. The input is decoded ([NewDecodingReader]); bad bytes are dropped
//  2. Each row is screened by the ordered [Rules]; the first rule that
//     rejects a row names the reason it is counted under
//  3. Surviving rows are converted to a [Record] and validated
//  4. Records are deduplicated by (institute, branch, category), first wins
//  5. The records are written with [WriteFile] and read back to verify
//
// No single row can fail a run. Run-level errors map to user-facing
// messages through [MapError].
package core
