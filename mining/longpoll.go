package mining

import (
	"strconv"
	"sync"

	"github.com/palladium-core/plmd/chainhash"
	"github.com/pkg/errors"
)

// LongPollWaiter implements the getblocktemplate longpoll contract: a
// caller blocks in Wait until either the chain tip changes or the mempool's
// transaction-update counter advances past what it last observed.
type LongPollWaiter struct {
	mtx sync.Mutex
	cnd *sync.Cond

	tipHash         chainhash.Hash
	txUpdateCounter uint64
}

// NewLongPollWaiter creates a waiter seeded with the current tip hash and
// transaction-update counter.
func NewLongPollWaiter(tipHash chainhash.Hash, txUpdateCounter uint64) *LongPollWaiter {
	w := &LongPollWaiter{tipHash: tipHash, txUpdateCounter: txUpdateCounter}
	w.cnd = sync.NewCond(&w.mtx)
	return w
}

// Notify records a new tip hash and/or transaction-update counter and wakes
// every blocked Wait call so each can recheck its condition.
func (w *LongPollWaiter) Notify(tipHash chainhash.Hash, txUpdateCounter uint64) {
	w.mtx.Lock()
	w.tipHash = tipHash
	w.txUpdateCounter = txUpdateCounter
	w.mtx.Unlock()
	w.cnd.Broadcast()
}

// ParseLongPollID splits a longpollid of the form <64-hex-char tip
// hash><decimal tx-update counter> into its two fields, rejecting any other
// format.
func ParseLongPollID(id string) (chainhash.Hash, uint64, error) {
	const hashHexLen = chainhash.HashSize * 2
	if len(id) <= hashHexLen {
		return chainhash.Hash{}, 0, errors.Errorf("invalid longpollid format: %q", id)
	}

	hash, err := chainhash.NewHashFromStr(id[:hashHexLen])
	if err != nil {
		return chainhash.Hash{}, 0, errors.Wrapf(err, "invalid longpollid format: %q", id)
	}

	counter, err := strconv.ParseUint(id[hashHexLen:], 10, 64)
	if err != nil {
		return chainhash.Hash{}, 0, errors.Wrapf(err, "invalid longpollid format: %q", id)
	}

	return *hash, counter, nil
}

// Wait blocks until the waiter's state differs from (tipHash,
// txUpdateCounter), then returns the new state. stop, if non-nil, is
// polled on each wakeup so the caller can abort the wait on shutdown.
func (w *LongPollWaiter) Wait(tipHash chainhash.Hash, txUpdateCounter uint64, stop <-chan struct{}) (chainhash.Hash, uint64) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	for w.tipHash == tipHash && w.txUpdateCounter == txUpdateCounter {
		if stop != nil {
			select {
			case <-stop:
				return w.tipHash, w.txUpdateCounter
			default:
			}
		}
		w.cnd.Wait()
	}
	return w.tipHash, w.txUpdateCounter
}
