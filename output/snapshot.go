package output

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/hupe1980/hybridize/blobstore"
	"github.com/hupe1980/hybridize/codec"
	"github.com/hupe1980/hybridize/internal/compression"
	"github.com/hupe1980/hybridize/internal/conv"
	"github.com/hupe1980/hybridize/internal/hash"
	"github.com/hupe1980/hybridize/interaction"
)

const (
	snapshotMagic   = "HYBS"
	snapshotVersion = 1

	// SnapshotDir holds the versioned snapshots written by Publish.
	SnapshotDir = "snapshots/"
	snapshotExt = ".snap"
)

// Snapshot is the persisted state of an InteractionList.
type Snapshot struct {
	MaxToStore   int                        `json:"max_to_store"`
	Reported     uint64                     `json:"reported"`
	Interactions []*interaction.Interaction `json:"interactions"`
}

// Snapshot returns a consistent copy of the list state.
func (l *InteractionList) Snapshot() *Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := &Snapshot{
		MaxToStore:   l.capacity,
		Reported:     l.reported,
		Interactions: make([]*interaction.Interaction, len(l.stored)),
	}
	for i := range l.stored {
		s.Interactions[i] = l.stored[i].Clone()
	}
	return s
}

// Save writes a snapshot of the list to name.
func (l *InteractionList) Save(ctx context.Context, store blobstore.BlobStore, name string) error {
	s := l.Snapshot()

	data, err := encodeSnapshot(s, l.opts.codec, l.opts.compression)
	if err != nil {
		return err
	}

	rc := l.opts.rc
	if err := rc.AcquireMemory(int64(len(data))); err != nil {
		return fmt.Errorf("output: save %s: %w", name, err)
	}
	defer rc.ReleaseMemory(int64(len(data)))

	if err := rc.AcquireIO(ctx, len(data)); err != nil {
		return err
	}
	if err := store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("output: save %s: %w", name, err)
	}

	l.opts.logger.InfoContext(ctx, "snapshot saved",
		"name", name,
		"interactions", len(s.Interactions),
		"bytes", len(data),
		"codec", l.opts.codec.Name(),
		"compression", l.opts.compression.String(),
	)
	return nil
}

// Publish saves the list as the next versioned snapshot below SnapshotDir
// and points CURRENT at it. It returns the snapshot name.
func (l *InteractionList) Publish(ctx context.Context, store blobstore.BlobStore) (string, error) {
	names, err := store.List(ctx, SnapshotDir)
	if err != nil {
		return "", fmt.Errorf("output: list snapshots: %w", err)
	}

	var next uint64 = 1
	for _, n := range names {
		if seq, ok := snapshotSeq(n); ok && seq >= next {
			next = seq + 1
		}
	}

	name := SnapshotName(next)
	if err := l.Save(ctx, store, name); err != nil {
		return "", err
	}
	if err := store.Put(ctx, blobstore.CurrentName, []byte(name)); err != nil {
		return "", fmt.Errorf("output: update %s: %w", blobstore.CurrentName, err)
	}

	l.opts.logger.DebugContext(ctx, "snapshot published", "name", name)
	return name, nil
}

// SnapshotName returns the blob name of the snapshot with sequence seq.
func SnapshotName(seq uint64) string {
	return fmt.Sprintf("%s%020d%s", SnapshotDir, seq, snapshotExt)
}

func snapshotSeq(name string) (uint64, bool) {
	base := path.Base(name)
	if !strings.HasSuffix(base, snapshotExt) || !strings.HasPrefix(name, SnapshotDir) {
		return 0, false
	}
	seq, err := strconv.ParseUint(strings.TrimSuffix(base, snapshotExt), 10, 64)
	if err != nil {
		return 0, false
	}
	return seq, true
}

// Load reads and validates the snapshot stored under name.
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*Snapshot, error) {
	opts := applyOptions(optFns)

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("output: open %s: %w", name, err)
	}
	defer blob.Close()

	size := blob.Size()
	n, err := conv.Int64ToInt(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %s size: %w", ErrCorruptSnapshot, name, err)
	}

	if err := opts.rc.AcquireMemory(size); err != nil {
		return nil, fmt.Errorf("output: load %s: %w", name, err)
	}
	defer opts.rc.ReleaseMemory(size)

	if err := opts.rc.AcquireIO(ctx, n); err != nil {
		return nil, err
	}

	data, err := blobstore.ReadAll(ctx, blob)
	if err != nil {
		return nil, fmt.Errorf("output: read %s: %w", name, err)
	}

	s, err := decodeSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("output: load %s: %w", name, err)
	}

	opts.logger.DebugContext(ctx, "snapshot loaded",
		"name", name,
		"interactions", len(s.Interactions),
		"bytes", len(data),
	)
	return s, nil
}

// LoadCurrent loads the snapshot CURRENT points at.
func LoadCurrent(ctx context.Context, store blobstore.BlobStore, optFns ...Option) (*Snapshot, error) {
	target, err := blobstore.Get(ctx, store, blobstore.CurrentName)
	if err != nil {
		return nil, fmt.Errorf("output: read %s: %w", blobstore.CurrentName, err)
	}

	name := strings.TrimSpace(string(target))
	if name == "" {
		return nil, fmt.Errorf("%w: empty %s", ErrCorruptSnapshot, blobstore.CurrentName)
	}
	return Load(ctx, store, name, optFns...)
}

// Restore rebuilds a list from a snapshot.
func Restore(s *Snapshot, optFns ...Option) (*InteractionList, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil snapshot", ErrCorruptSnapshot)
	}
	if s.MaxToStore < 1 || s.MaxToStore > MaxCapacity {
		return nil, fmt.Errorf("%w: capacity %d", ErrCorruptSnapshot, s.MaxToStore)
	}
	if s.Reported < uint64(len(s.Interactions)) || len(s.Interactions) > s.MaxToStore {
		return nil, fmt.Errorf("%w: %d interactions, %d reported, capacity %d",
			ErrCorruptSnapshot, len(s.Interactions), s.Reported, s.MaxToStore)
	}

	l, err := New(s.MaxToStore, optFns...)
	if err != nil {
		return nil, err
	}
	for i, in := range s.Interactions {
		if !in.IsValid() {
			return nil, fmt.Errorf("%w: interaction %d is invalid", ErrCorruptSnapshot, i)
		}
		l.Add(in)
	}
	if l.Len() != len(s.Interactions) {
		return nil, fmt.Errorf("%w: duplicate interactions", ErrCorruptSnapshot)
	}

	l.reported = s.Reported
	return l, nil
}

// Snapshot layout, little endian:
//
//	magic [4] | version u16 | compression u8 | codec name length u8 |
//	codec name | CRC32C of block u32 | block
//
// The block is the codec-encoded Snapshot, framed by internal/compression.
func encodeSnapshot(s *Snapshot, c codec.Codec, t compression.Type) ([]byte, error) {
	// Load can only decode with built-in codecs.
	name := c.Name()
	if _, err := codec.Lookup(name); err != nil {
		return nil, fmt.Errorf("output: encode snapshot: %w", err)
	}

	payload, err := c.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("output: encode snapshot: %w", err)
	}

	block, err := compression.Compress(payload, t)
	if err != nil {
		return nil, fmt.Errorf("output: compress snapshot: %w", err)
	}

	buf := make([]byte, 0, len(snapshotMagic)+4+len(name)+4+len(block))
	buf = append(buf, snapshotMagic...)
	buf = binary.LittleEndian.AppendUint16(buf, snapshotVersion)
	buf = append(buf, byte(t), byte(len(name)))
	buf = append(buf, name...)
	buf = binary.LittleEndian.AppendUint32(buf, hash.CRC32C(block))
	buf = append(buf, block...)
	return buf, nil
}

func decodeSnapshot(data []byte) (*Snapshot, error) {
	const fixed = len(snapshotMagic) + 4

	if len(data) < fixed || string(data[:len(snapshotMagic)]) != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrCorruptSnapshot)
	}
	if v := binary.LittleEndian.Uint16(data[4:]); v != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptSnapshot, v)
	}

	t := compression.Type(data[6])
	nameLen := int(data[7])
	if len(data) < fixed+nameLen+4 {
		return nil, fmt.Errorf("%w: truncated header", ErrCorruptSnapshot)
	}

	name := string(data[fixed : fixed+nameLen])
	c, err := codec.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	off := fixed + nameLen
	sum := binary.LittleEndian.Uint32(data[off:])
	block := data[off+4:]
	if hash.CRC32C(block) != sum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptSnapshot)
	}

	payload, err := compression.Decompress(block, t)
	if err != nil {
		return nil, errors.Join(ErrCorruptSnapshot, err)
	}

	var s Snapshot
	if err := c.Unmarshal(payload, &s); err != nil {
		return nil, errors.Join(ErrCorruptSnapshot, err)
	}
	return &s, nil
}
