package types

import (
	"math"

	"github.com/reoring/botschema"
)

// FileSizeUnknown is substituted for File.FileSize when the API omits it.
// It is a legitimate size too; use FileShape.DecodeWithMeta to tell them
// apart.
const FileSizeUnknown uint32 = math.MaxUint32

// File is a file ready to be downloaded. The path returned by getFile stays
// valid for at least one hour; request a new one when it expires.
type File struct {
	// Identifier for this file.
	FileID string `json:"file_id"`

	// Unique identifier for this file. It is the same over time and for
	// different bots, and cannot be used to download or reuse the file.
	FileUniqueID string `json:"file_unique_id"`

	// File size, if known.
	//
	// The API omits this member although its schema marks it mandatory.
	// Absence decodes as FileSizeUnknown.
	FileSize uint32 `json:"file_size"`

	// File path to download from.
	//
	// The API omits this member although its schema marks it mandatory.
	// Absence decodes as "".
	FilePath string `json:"file_path"`
}

// FileShape decodes File. file_id and file_unique_id are strict.
var FileShape = botschema.ObjectOf(
	botschema.Required("file_id", func(f *File) *string { return &f.FileID }),
	botschema.Required("file_unique_id", func(f *File) *string { return &f.FileUniqueID }),
	botschema.Lenient("file_size", func(f *File) *uint32 { return &f.FileSize }, FileSizeUnknown),
	botschema.Lenient("file_path", func(f *File) *string { return &f.FilePath }, ""),
).MustBuild()

func (f *File) UnmarshalJSON(data []byte) error { return FileShape.DecodeInto(data, f) }
