package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	HomeDirError
	ConfigTemplateError
	ConfigReadError
	ManifestReadError
	ArchiveRemoveError

	// Logging errors
	LogFileError

	// Input errors
	CSVOpenError
	CSVHeaderError
	CSVRecordError
	CSVValidationError
	ManifestError

	// Engine errors
	NISECIComputationError
	HFBIComputationError

	// Output errors
	OutputEncodeError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableExistsCheckError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError

	// Archive errors
	ArchiveOpenError
	ArchiveInitError
	ArchiveSaveError
	ArchiveUnknownTypeError

	// Batch errors
	BatchStationError
	BatchMetricsError
)
