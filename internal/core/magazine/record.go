// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine

import (
	"encoding/json"
	"fmt"
	"time"
)

// # Record Mapping

/*
NewRecord packs a finished structure into the generic content record.

Description: The structure is serialised as the canonical representation.
Introduction and Conclusion copy the INTRODUCTION and SUMMARY page content,
and Images lists every page image in slot order.
*/
func NewRecord(id, ownerID string, brief Brief, structure Structure, degraded bool) (*Record, error) {
	encoded, err := json.Marshal(structure)
	if err != nil {
		return nil, fmt.Errorf("magazine: encode structure: %w", err)
	}

	record := &Record{
		ID:               id,
		OwnerID:          ownerID,
		Title:            structure.Title,
		Images:           []string{},
		Structure:        string(encoded),
		Brief:            brief,
		ModerationStatus: ModerationApproved,
		Degraded:         degraded,
		CreatedAt:        time.Now().UTC(),
	}

	for _, page := range structure.Pages {
		switch page.Type {
		case PageIntroduction:
			record.Introduction = page.Content
		case PageSummary:
			record.Conclusion = page.Content
		}
		if page.Image != "" {
			record.Images = append(record.Images, page.Image)
		}
	}

	return record, nil
}

// DecodeStructure parses the structure JSON stored on a record.
func (record *Record) DecodeStructure() (Structure, error) {
	var structure Structure
	if err := json.Unmarshal([]byte(record.Structure), &structure); err != nil {
		return Structure{}, fmt.Errorf("magazine: decode structure: %w", err)
	}
	return structure, nil
}
