package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	WriteConfigError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Remote service errors
	HTTPRequestError
	HTTPStatusError
	DecodeResponseError

	// Taxonomy errors
	TaxonNotFoundError
	TaxonHierarchyError
	HarvestNotConfirmedError

	// Sequence database errors
	SequenceSearchError
	SequenceFetchError
	TaxaByRankError

	// Export errors
	ExportFormatError
	ExportTableError

	// Prioritization errors
	PriorityInputError
	PriorityEmptyInputError
	PriorityPipelineError

	// Process errors
	CancelledError
)
