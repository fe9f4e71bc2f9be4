package models

import (
	"strings"
)

// AnalysisStatus represents where an automated analysis run is
type AnalysisStatus string

const (
	// AnalysisStatusIdle indicates no run has started for the selected file
	AnalysisStatusIdle AnalysisStatus = "idle"

	// AnalysisStatusProcessing indicates the scripted run is advancing
	AnalysisStatusProcessing AnalysisStatus = "processing"

	// AnalysisStatusComplete indicates the last checkpoint was reached
	AnalysisStatusComplete AnalysisStatus = "complete"
)

// VideoContentTypePrefix is the only accepted MIME type family
const VideoContentTypePrefix = "video/"

// VideoFile describes a selected upload. Its content is never read.
type VideoFile struct {
	// Name is the file name as chosen by the user
	Name string `json:"name"`

	// ContentType is the MIME type reported for the file
	ContentType string `json:"contentType"`

	// Size is the file size in bytes
	Size int64 `json:"size"`
}

// IsVideo reports whether the content type is in the video family
func IsVideo(contentType string) bool {
	return strings.HasPrefix(contentType, VideoContentTypePrefix)
}

// Checkpoint is one step of the scripted progress sequence
type Checkpoint struct {
	// Progress is the percentage reached at this step
	Progress int `json:"progress"`

	// Message describes the step
	Message string `json:"message"`
}

// Analysis is the state of the automated detection view
type Analysis struct {
	// ID is the session key
	ID string `json:"id"`

	// File is the selected upload, nil until one is accepted
	File *VideoFile `json:"file,omitempty"`

	// Status is where the run is
	Status AnalysisStatus `json:"status"`

	// Progress is the last checkpoint percentage
	Progress int `json:"progress"`

	// Step is the last checkpoint message
	Step string `json:"step,omitempty"`

	// Result is the detector output once the run completed
	Result *SessionResult `json:"result,omitempty"`
}

// NewAnalysis returns an idle analysis with no file
func NewAnalysis(id string) *Analysis {
	return &Analysis{
		ID:     id,
		Status: AnalysisStatusIdle,
	}
}

// Clone returns a deep copy of the analysis
func (a *Analysis) Clone() *Analysis {
	if a == nil {
		return nil
	}
	out := *a
	if a.File != nil {
		f := *a.File
		out.File = &f
	}
	out.Result = a.Result.Clone()
	return &out
}
