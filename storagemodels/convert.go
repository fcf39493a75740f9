/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// tagKey makes typed entities and records agree on field names: the record
// field for a struct field is its json tag.
const tagKey = "json"

func toAttributes(in any) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMapWithOptions(in, func(o *attributevalue.EncoderOptions) {
		o.TagKey = tagKey
	})
}

func fromAttributes(av map[string]types.AttributeValue, out any) error {
	return attributevalue.UnmarshalMapWithOptions(av, out, func(o *attributevalue.DecoderOptions) {
		o.TagKey = tagKey
	})
}

// RecordFrom converts a typed entity (a struct or map) into a Record.
// Numeric fields come back as float64, time.Time fields as RFC 3339 strings.
func RecordFrom(v any) (Record, error) {
	av, err := toAttributes(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}

	out := make(map[string]any, len(av))
	if err := fromAttributes(av, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entity attributes: %w", err)
	}
	return Record(out), nil
}

// DecodeRecord populates out, a pointer to a typed entity, from rec.
func DecodeRecord(rec Record, out any) error {
	if rec == nil {
		return fmt.Errorf("cannot decode a nil record")
	}

	av, err := toAttributes(map[string]any(rec))
	if err != nil {
		return fmt.Errorf("failed to marshal record %q: %w", rec.ID(), err)
	}
	if err := fromAttributes(av, out); err != nil {
		return fmt.Errorf("failed to decode record %q into %T: %w", rec.ID(), out, err)
	}
	return nil
}
