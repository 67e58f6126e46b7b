package mining

import (
	"testing"
	"time"

	"github.com/palladium-core/plmd/chainhash"
)

func TestParseLongPollIDRoundTrip(t *testing.T) {
	hash := chainhash.HashH([]byte("tip"))
	id := longPollID(hash, 7)

	gotHash, gotCounter, err := ParseLongPollID(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotHash != hash || gotCounter != 7 {
		t.Fatalf("got (%s, %d), want (%s, %d)", gotHash, gotCounter, hash, 7)
	}
}

func TestParseLongPollIDRejectsMalformed(t *testing.T) {
	if _, _, err := ParseLongPollID("not-a-valid-id"); err == nil {
		t.Fatal("expected an error for a malformed longpollid")
	}
}

func TestLongPollWaiterWakesOnNotify(t *testing.T) {
	hash := chainhash.HashH([]byte("a"))
	w := NewLongPollWaiter(hash, 0)

	done := make(chan struct{})
	var gotHash chainhash.Hash
	var gotCounter uint64
	go func() {
		gotHash, gotCounter = w.Wait(hash, 0, nil)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	next := chainhash.HashH([]byte("b"))
	w.Notify(next, 1)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not wake up after Notify")
	}
	if gotHash != next || gotCounter != 1 {
		t.Fatalf("got (%s, %d), want (%s, %d)", gotHash, gotCounter, next, 1)
	}
}

func TestLongPollWaiterStopChannel(t *testing.T) {
	hash := chainhash.HashH([]byte("a"))
	w := NewLongPollWaiter(hash, 0)
	stop := make(chan struct{})
	close(stop)

	done := make(chan struct{})
	go func() {
		w.Wait(hash, 0, stop)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not respect a pre-closed stop channel")
	}
}
