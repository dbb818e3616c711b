package almanac

import (
	"bytes"
	"encoding/gob"
	"errors"
	"hash/crc32"
	"os"

	"github.com/b97tsk/seedmap/rangemap"
)

const _filePerm = 0644

var ErrChecksum = errors.New("almanac: snapshot checksum mismatch")

type _Snapshot struct {
	Payload  []byte
	HashCode uint32
}

type _SnapshotAlmanac struct {
	Mode  SeedMode
	Seeds []rangemap.Range
	Maps  []_SnapshotMap
}

type _SnapshotMap struct {
	Name    string
	Entries []rangemap.Entry
}

// WriteSnapshot stores a in the file name. The data goes to name+"New"
// first and replaces name only once it is synced.
func WriteSnapshot(name string, a *Almanac) error {
	data := _SnapshotAlmanac{Mode: a.Mode, Seeds: a.Seeds}
	for _, m := range a.Maps {
		data.Maps = append(data.Maps, _SnapshotMap{Name: m.Name(), Entries: m.Entries()})
	}

	var payload bytes.Buffer
	if err := gob.NewEncoder(&payload).Encode(&data); err != nil {
		return err
	}

	file, err := os.OpenFile(name+"New", os.O_WRONLY|os.O_CREATE|os.O_TRUNC, _filePerm)
	if err != nil {
		return err
	}

	nerr := gob.NewEncoder(file).Encode(&_Snapshot{
		Payload:  payload.Bytes(),
		HashCode: crc32.ChecksumIEEE(payload.Bytes()),
	})
	serr := file.Sync()
	cerr := file.Close()

	switch {
	case nerr != nil:
		return nerr
	case serr != nil:
		return serr
	case cerr != nil:
		return cerr
	}
	return os.Rename(name+"New", name)
}

// ReadSnapshot loads a snapshot written by WriteSnapshot. A leftover
// name+"New" from an interrupted write is preferred and moved into place when
// it decodes and its checksum holds; otherwise it is removed and name is read.
func ReadSnapshot(name string) (*Almanac, error) {
	if a, err := _readSnapshotFile(name + "New"); err == nil {
		if err := os.Rename(name+"New", name); err != nil {
			return nil, err
		}
		return a, nil
	} else if !os.IsNotExist(err) {
		os.Remove(name + "New")
	}
	return _readSnapshotFile(name)
}

func _readSnapshotFile(name string) (*Almanac, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var snap _Snapshot
	if err := gob.NewDecoder(file).Decode(&snap); err != nil {
		return nil, err
	}
	if crc32.ChecksumIEEE(snap.Payload) != snap.HashCode {
		return nil, ErrChecksum
	}

	var data _SnapshotAlmanac
	if err := gob.NewDecoder(bytes.NewReader(snap.Payload)).Decode(&data); err != nil {
		return nil, err
	}

	a := &Almanac{Mode: data.Mode, Seeds: data.Seeds}
	for _, m := range data.Maps {
		a.Maps = append(a.Maps, rangemap.NewMap(m.Name, m.Entries...))
	}
	return a, nil
}
