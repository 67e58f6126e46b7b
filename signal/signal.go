// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package signal coordinates graceful shutdown across a running process: an
// OS interrupt or an explicit request on ShutdownRequestChannel closes the
// interrupt channel returned by InterruptListener and runs the registered
// interrupt handlers. Nothing in this package stops the mining long-poll
// wait, which takes its own stop channel.
package signal

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// interruptSignals lists the OS signals that trigger a graceful shutdown.
func interruptSignals() []os.Signal {
	return []os.Signal{os.Interrupt, syscall.SIGTERM}
}

// interruptChannel is closed once to signal that the process should shut
// down. closeOnce guards against closing it twice.
var (
	interruptChannel    = make(chan struct{})
	shutdownRequestChan = make(chan struct{})
	closeOnce           sync.Once
)

// ShutdownRequestChannel is the channel callers send on to request a
// graceful shutdown, as an alternative to an OS signal.
var ShutdownRequestChannel = shutdownRequestChan

// interruptCallbacks holds any callback to invoke when an interrupt is
// requested, run in registration order before the channel is closed.
var interruptCallbacks []func()

// addHandlerChannel serializes callback registration against the interrupt
// goroutine that runs them.
var addHandlerChannel = make(chan func())

// AddInterruptHandler adds a handler to be invoked when a graceful shutdown
// is requested, either by an OS interrupt signal or an explicit send on
// ShutdownRequestChannel. Handlers run in the order added.
func AddInterruptHandler(handler func()) {
	select {
	case addHandlerChannel <- handler:
	case <-interruptChannel:
		handler()
	}
}

// InterruptListener starts a goroutine that listens for OS interrupt
// signals (SIGINT, and SIGTERM on POSIX) as well as explicit sends on
// ShutdownRequestChannel, and returns a channel that is closed exactly once
// when either occurs. Registered handlers run before the returned channel
// closes.
func InterruptListener() <-chan struct{} {
	osSignalChan := make(chan os.Signal, 1)
	signal.Notify(osSignalChan, interruptSignals()...)

	go func() {
		isShutdown := false
		for {
			select {
			case sig := <-osSignalChan:
				if isShutdown {
					log.Infof("Received signal (%s). Already shutting down...", sig)
					continue
				}
				log.Infof("Received signal (%s). Shutting down...", sig)
				isShutdown = true
				invokeCallbacksAndClose()

			case <-shutdownRequestChan:
				if isShutdown {
					log.Infof("Shutdown requested. Already shutting down...")
					continue
				}
				log.Infof("Shutdown requested. Shutting down...")
				isShutdown = true
				invokeCallbacksAndClose()

			case handler := <-addHandlerChannel:
				if isShutdown {
					handler()
					continue
				}
				interruptCallbacks = append(interruptCallbacks, handler)

			case <-interruptChannel:
				return
			}
		}
	}()

	return interruptChannel
}

func invokeCallbacksAndClose() {
	for _, handler := range interruptCallbacks {
		handler()
	}
	closeOnce.Do(func() { close(interruptChannel) })
}

// InterruptRequested returns true once a shutdown has been requested,
// whether by OS signal or an explicit send on ShutdownRequestChannel.
func InterruptRequested() bool {
	select {
	case <-interruptChannel:
		return true
	default:
		return false
	}
}
