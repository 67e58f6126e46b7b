// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sync/atomic"

	"github.com/palladium-core/plmd/auxpow"
	"github.com/palladium-core/plmd/blockindex"
	"github.com/palladium-core/plmd/chaincfg"
	"github.com/palladium-core/plmd/config"
	"github.com/palladium-core/plmd/logger"
	"github.com/palladium-core/plmd/mining"
	"github.com/palladium-core/plmd/signal"
	"github.com/palladium-core/plmd/wire"
)

var log = logger.NewSubsystem("PLMD")

// plmd wires together the consensus engine: the chain-index store blocks
// are validated and connected against, the duplicate-AuxPoW-parent guard,
// and the long-poll waiter getblocktemplate callers block on.
type plmd struct {
	params      *chaincfg.Params
	store       *blockindex.Store
	seenParents *auxpow.DuplicateSet
	longPoll    *mining.LongPollWaiter

	started, shutdown int32
}

// newPlmd builds a plmd seeded with params' genesis block already connected
// as the chain tip.
func newPlmd(params *chaincfg.Params) *plmd {
	store := blockindex.NewStore()
	genesis := blockindex.NewNode(&params.GenesisBlock.Header, nil)
	store.AddNode(genesis)

	return &plmd{
		params:      params,
		store:       store,
		seenParents: auxpow.NewDuplicateSet(),
		longPoll:    mining.NewLongPollWaiter(genesis.Hash(), 0),
	}
}

// start marks the engine running. There is no network or RPC surface to
// bring up; submitBlock and the long-poll waiter are driven directly by an
// embedding caller (a test harness or an RPC layer this repository does not
// implement).
func (p *plmd) start() {
	if atomic.AddInt32(&p.started, 1) != 1 {
		return
	}
	log.Infof("plmd started on %s, tip %s at height %d",
		p.params.Name, p.store.Tip().Hash(), p.store.Tip().Height())
}

// stop marks the engine stopped. Safe to call more than once.
func (p *plmd) stop() {
	if atomic.AddInt32(&p.shutdown, 1) != 1 {
		log.Infof("plmd is already shutting down")
		return
	}
	log.Infof("plmd shutting down")
}

// submitBlock validates and, on success, connects block, returning the
// BIP22 verdict string and waking any long-poll waiters.
func (p *plmd) submitBlock(block *mining.Template) mining.Verdict {
	b := block.Block()
	verdict := mining.Submit(b, p.store, p.params, p.seenParents)
	if verdict == mining.VerdictAccepted {
		tip := p.store.Tip()
		p.longPoll.Notify(tip.Hash(), 0)
	}
	return verdict
}

// submitHeader validates header as a candidate chain tip without a full
// block body, connecting it on success. Only valid below the AuxPoW
// activation height; see mining.SubmitHeader.
func (p *plmd) submitHeader(header *wire.BlockHeader) (mining.Verdict, error) {
	verdict, err := mining.SubmitHeader(header, p.store, p.params)
	if err != nil {
		return "", err
	}
	if verdict == mining.VerdictAccepted {
		tip := p.store.Tip()
		p.longPoll.Notify(tip.Hash(), 0)
	}
	return verdict, nil
}

// checkProposal validates a getblocktemplate "proposal" block without
// connecting it to the chain index.
func (p *plmd) checkProposal(block *wire.MsgBlock) mining.Verdict {
	return mining.CheckProposal(block, p.store, p.params, p.seenParents)
}

// plmdMain is the real entry point, separated from main so main can turn a
// returned error into exit status 1.
func plmdMain() error {
	if err := config.LoadAndSetActiveConfig(); err != nil {
		return err
	}
	cfg := config.ActiveConfig()

	interrupt := signal.InterruptListener()

	node := newPlmd(cfg.Params)
	node.start()

	signal.AddInterruptHandler(func() {
		node.stop()
	})

	<-interrupt
	log.Infof("shutdown complete")
	return nil
}
