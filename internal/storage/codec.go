package storage

import (
	"encoding/json"
	"errors"

	"kinesis/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeRun(r model.RunRecord) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeRun(data []byte) (model.RunRecord, error) {
	var run model.RunRecord
	if err := json.Unmarshal(data, &run); err != nil {
		return model.RunRecord{}, err
	}
	if err := checkVersion(run.VersionedRecord); err != nil {
		return model.RunRecord{}, err
	}
	return run, nil
}

func EncodeTickTrace(t model.TickTrace) ([]byte, error) {
	return json.Marshal(t)
}

func DecodeTickTrace(data []byte) (model.TickTrace, error) {
	var trace model.TickTrace
	if err := json.Unmarshal(data, &trace); err != nil {
		return model.TickTrace{}, err
	}
	if err := checkVersion(trace.VersionedRecord); err != nil {
		return model.TickTrace{}, err
	}
	return trace, nil
}

func checkVersion(record model.VersionedRecord) error {
	if record.SchemaVersion != CurrentSchemaVersion {
		return ErrVersionMismatch
	}
	if record.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}

// Versioned stamps a record with the current schema and codec versions.
func Versioned() model.VersionedRecord {
	return model.VersionedRecord{
		SchemaVersion: CurrentSchemaVersion,
		CodecVersion:  CurrentCodecVersion,
	}
}
