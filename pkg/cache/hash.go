package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashInput hashes a pipeline input together with its kind, so the same
// bytes read as a TOML scene, a JSON scene or a tree document never share
// a layout entry.
func HashInput(kind string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(kind))
	h.Write([]byte{0})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// stageKey builds "<stage>:<hash>" from the hash of the stage's input and
// the options that change its output. Options are key structs with fixed
// field order, so their JSON form is stable.
func stageKey(stage, inputHash string, opts any) string {
	enc, _ := json.Marshal(opts)
	h := sha256.New()
	h.Write([]byte(inputHash))
	h.Write([]byte{0})
	h.Write(enc)
	return stage + ":" + hex.EncodeToString(h.Sum(nil))
}
