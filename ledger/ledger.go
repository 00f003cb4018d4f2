// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package ledger is the hosting runtime: account storage, signer checks,
// program-as-signer authorization, storage deposits, time and the event log.
// Every operation runs against a staged overlay and is committed in a single
// batch, or not at all.
package ledger

import (
	"encoding/binary"
	"sync"
	"time"

	gmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/gagliardetto/solana-go"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"github.com/oreprotocol/ore/builtin/reverts"
	"github.com/oreprotocol/ore/kv"
	"github.com/oreprotocol/ore/log"
	"github.com/oreprotocol/ore/metrics"
)

var (
	logger = log.WithContext("pkg", "ledger")

	metricExecutions = metrics.LazyLoadCounterVec("ledger_executions_count", []string{"result"})

	accountsBucket = kv.Bucket("a")
	eventsBucket   = kv.Bucket("e")
	nextSeqKey     = []byte("meta-next-event-seq")
	genesisKey     = []byte("meta-genesis")
)

// DefaultSlotDuration is the target slot time of the hosting ledger.
const DefaultSlotDuration = 400 * time.Millisecond

// Options configure a Ledger.
type Options struct {
	// Genesis is the time of slot 0. Defaults to the genesis recorded in the
	// store, or the clock's time when the store is new.
	Genesis      time.Time
	SlotDuration time.Duration
	Rent         Rent
}

// Event is an entry of the append-only log exposed to observers.
type Event struct {
	Seq       uint64
	Program   solana.PublicKey
	Slot      uint64
	Timestamp uint64
	Data      []byte
}

// Ledger holds accounts and serializes operations on them.
type Ledger struct {
	store kv.Store
	clock clockwork.Clock
	opts  Options

	mu      sync.Mutex
	nextSeq uint64
}

// New opens a ledger over store.
func New(store kv.Store, clock clockwork.Clock, opts Options) (*Ledger, error) {
	if opts.Genesis.IsZero() {
		genesis, err := loadGenesis(store, clock)
		if err != nil {
			return nil, err
		}
		opts.Genesis = genesis
	}
	if opts.SlotDuration <= 0 {
		opts.SlotDuration = DefaultSlotDuration
	}
	if opts.Rent == (Rent{}) {
		opts.Rent = DefaultRent
	}

	l := &Ledger{store: store, clock: clock, opts: opts}
	raw, err := store.Get(nextSeqKey)
	switch {
	case err == nil:
		if len(raw) != 8 {
			return nil, errors.New("ledger: corrupted event sequence")
		}
		l.nextSeq = binary.BigEndian.Uint64(raw)
	case store.IsNotFound(err):
	default:
		return nil, errors.Wrap(err, "ledger: load event sequence")
	}
	return l, nil
}

func loadGenesis(store kv.Store, clock clockwork.Clock) (time.Time, error) {
	raw, err := store.Get(genesisKey)
	switch {
	case err == nil:
		if len(raw) != 8 {
			return time.Time{}, errors.New("ledger: corrupted genesis")
		}
		return time.Unix(0, int64(binary.BigEndian.Uint64(raw))), nil
	case store.IsNotFound(err):
		now := clock.Now()
		if err := store.Put(genesisKey, seqKey(uint64(now.UnixNano()))); err != nil {
			return time.Time{}, errors.Wrap(err, "ledger: save genesis")
		}
		return now, nil
	default:
		return time.Time{}, errors.Wrap(err, "ledger: load genesis")
	}
}

// NextSeq returns the sequence the next emitted event will get.
func (l *Ledger) NextSeq() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.nextSeq
}

// Clock returns the current slot and unix time.
func (l *Ledger) Clock() Clock {
	now := l.clock.Now()
	var slot uint64
	if elapsed := now.Sub(l.opts.Genesis); elapsed > 0 {
		slot = uint64(elapsed / l.opts.SlotDuration)
	}
	return Clock{Slot: slot, UnixTimestamp: now.Unix()}
}

// MinimumBalance returns the storage deposit for an account of size bytes.
func (l *Ledger) MinimumBalance(size int) uint64 {
	return l.opts.Rent.MinimumBalance(size)
}

// Account returns the committed account at addr. A missing account is
// returned as an empty, system owned account.
func (l *Ledger) Account(addr solana.PublicKey) (*Account, error) {
	raw, err := l.store.Get(accountsBucket.Key(addr[:]))
	if err != nil {
		if l.store.IsNotFound(err) {
			return &Account{Owner: solana.SystemProgramID}, nil
		}
		return nil, errors.Wrap(err, "ledger: get account")
	}
	return decodeAccount(raw)
}

// Airdrop credits lamports to addr, creating a system account if needed.
func (l *Ledger) Airdrop(addr solana.PublicKey, lamports uint64) error {
	return l.Execute(solana.SystemProgramID, nil, func(tx *Tx) error {
		acc, err := tx.Account(addr)
		if err != nil {
			return err
		}
		next, overflow := gmath.SafeAdd(acc.Lamports, lamports)
		if overflow {
			return reverts.New(reverts.InvalidArgument, "lamports overflow")
		}
		acc.Lamports = next
		tx.put(addr, acc)
		return nil
	})
}

// Execute runs fn as one atomic operation of program, with signers as the
// parties that signed it. Nothing fn staged is kept when it returns an error.
func (l *Ledger) Execute(program solana.PublicKey, signers []solana.PublicKey, fn func(tx *Tx) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := newTx(l, program, signers)
	if err := fn(tx); err != nil {
		metricExecutions().AddWithLabel(1, map[string]string{"result": "rejected"})
		logger.Debug("operation rejected", "program", program, "err", err)
		return err
	}
	if err := l.commit(tx); err != nil {
		metricExecutions().AddWithLabel(1, map[string]string{"result": "failed"})
		return err
	}
	metricExecutions().AddWithLabel(1, map[string]string{"result": "ok"})
	return nil
}

func (l *Ledger) commit(tx *Tx) error {
	batch := l.store.NewBatch()
	for addr, acc := range tx.staged {
		if err := batch.Put(accountsBucket.Key(addr[:]), acc.encode()); err != nil {
			return errors.Wrap(err, "ledger: stage account")
		}
	}

	seq := l.nextSeq
	for _, ev := range tx.events {
		ev.Seq = seq
		data, err := rlp.EncodeToBytes(ev)
		if err != nil {
			return errors.Wrap(err, "ledger: encode event")
		}
		if err := batch.Put(eventsBucket.Key(seqKey(seq)), data); err != nil {
			return errors.Wrap(err, "ledger: stage event")
		}
		seq++
	}
	if seq != l.nextSeq {
		if err := batch.Put(nextSeqKey, seqKey(seq)); err != nil {
			return errors.Wrap(err, "ledger: stage event sequence")
		}
	}

	if batch.Len() == 0 {
		return nil
	}
	if err := batch.Write(); err != nil {
		return errors.Wrap(err, "ledger: commit")
	}
	l.nextSeq = seq
	return nil
}

// Events returns up to limit events starting at sequence from.
func (l *Ledger) Events(from uint64, limit int) ([]*Event, error) {
	var (
		events []*Event
		decErr error
	)
	r := eventsBucket.Range()
	r.From = eventsBucket.Key(seqKey(from))
	err := l.store.Iterate(r, func(p kv.Pair) bool {
		var ev Event
		if decErr = rlp.DecodeBytes(p.Value, &ev); decErr != nil {
			return false
		}
		events = append(events, &ev)
		return limit <= 0 || len(events) < limit
	})
	if err != nil {
		return nil, errors.Wrap(err, "ledger: iterate events")
	}
	if decErr != nil {
		return nil, errors.Wrap(decErr, "ledger: decode event")
	}
	return events, nil
}

func seqKey(seq uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], seq)
	return b[:]
}
