package cue

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/user/drrm-simulator/internal/interfaces"
	"github.com/user/drrm-simulator/internal/types"
	"go.uber.org/zap"
)

// MutedKey is where the mute flag is persisted
const MutedKey = "drrm-game-muted"

// LogEmitter writes every cue to the logger
type LogEmitter struct {
	logger *zap.Logger
}

// NewLogEmitter creates a log emitter
func NewLogEmitter(logger *zap.Logger) *LogEmitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogEmitter{logger: logger}
}

func (le *LogEmitter) Emit(cue types.Cue) {
	le.logger.Debug("Audio cue", zap.String("cue", string(cue)))
}

// Multi forwards each cue to every emitter in order
type Multi []interfaces.CueEmitter

func (m Multi) Emit(cue types.Cue) {
	for _, e := range m {
		e.Emit(cue)
	}
}

// MuteEmitter drops cues while muted. The flag survives restarts through the store.
type MuteEmitter struct {
	next   interfaces.CueEmitter
	store  interfaces.Store
	muted  atomic.Bool
	logger *zap.Logger
}

// NewMuteEmitter wraps next and restores the persisted flag
func NewMuteEmitter(next interfaces.CueEmitter, store interfaces.Store, logger *zap.Logger) *MuteEmitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	me := &MuteEmitter{next: next, store: store, logger: logger}

	data, ok, err := store.Get(MutedKey)
	if err != nil {
		logger.Warn("Failed to read mute flag", zap.Error(err))
		return me
	}
	if ok {
		muted, err := strconv.ParseBool(string(data))
		if err != nil {
			logger.Warn("Ignoring malformed mute flag", zap.String("value", string(data)))
			return me
		}
		me.muted.Store(muted)
	}
	return me
}

func (me *MuteEmitter) Emit(cue types.Cue) {
	if me.muted.Load() {
		return
	}
	me.next.Emit(cue)
}

// Muted reports the current flag
func (me *MuteEmitter) Muted() bool {
	return me.muted.Load()
}

// SetMuted changes and persists the flag
func (me *MuteEmitter) SetMuted(muted bool) {
	me.muted.Store(muted)
	if err := me.store.Set(MutedKey, []byte(strconv.FormatBool(muted))); err != nil {
		me.logger.Warn("Failed to save mute flag", zap.Error(err))
	}
}

// Toggle flips the flag and returns the new value
func (me *MuteEmitter) Toggle() bool {
	muted := !me.muted.Load()
	me.SetMuted(muted)
	return muted
}

// Entry is one cue recorded by a Feed
type Entry struct {
	Seq uint64    `json:"seq"`
	Cue types.Cue `json:"cue"`
	At  time.Time `json:"at"`
}

// Feed keeps the most recent cues so a polling client can play them
type Feed struct {
	entries []Entry
	size    int
	seq     uint64
	lock    sync.Mutex
}

// NewFeed creates a feed holding up to size entries
func NewFeed(size int) *Feed {
	if size <= 0 {
		size = 32
	}
	return &Feed{entries: make([]Entry, 0, size), size: size}
}

func (f *Feed) Emit(cue types.Cue) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.seq++
	if len(f.entries) == f.size {
		f.entries = append(f.entries[:0], f.entries[1:]...)
	}
	f.entries = append(f.entries, Entry{Seq: f.seq, Cue: cue, At: time.Now()})
}

// Since returns entries with a sequence number greater than seq, oldest first
func (f *Feed) Since(seq uint64) []Entry {
	f.lock.Lock()
	defer f.lock.Unlock()

	out := make([]Entry, 0)
	for _, e := range f.entries {
		if e.Seq > seq {
			out = append(out, e)
		}
	}
	return out
}
