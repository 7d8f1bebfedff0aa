// Package handler turns raw event frames from the validator into atomic
// writes against the reporting database. One frame yields the committed
// block descriptor plus one operation per in-namespace state change, applied
// together or not at all.
package handler

import (
	"context"
	"regexp"
	"strconv"

	"github.com/golang/protobuf/proto"
	"github.com/hyperledger/sawtooth-sdk-go/protobuf/events_pb2"
	"github.com/hyperledger/sawtooth-sdk-go/protobuf/transaction_receipt_pb2"

	"github.com/target/consensource-sds/addressing"
	serrors "github.com/target/consensource-sds/errors"
	"github.com/target/consensource-sds/logging"
	"github.com/target/consensource-sds/metrics"
	"github.com/target/consensource-sds/storage"
)

const (
	blockCommitEventType = "sawtooth/block-commit"
	stateDeltaEventType  = "sawtooth/state-delta"
)

// BlockRecorder observes the number of each block applied to the reporting
// database. The health server implements it.
type BlockRecorder interface {
	RecordBlock(blockNum int64)
}

// EventHandler parses event frames and submits the derived operations to the
// reporting database.
type EventHandler struct {
	store          storage.Store
	logger         *logging.ComponentLogger
	recorder       BlockRecorder
	namespaceRegex *regexp.Regexp
}

// NewEventHandler creates an event handler writing through store. recorder
// may be nil.
func NewEventHandler(store storage.Store, logger *logging.ComponentLogger, recorder BlockRecorder) *EventHandler {
	return &EventHandler{
		store:          store,
		logger:         logger,
		recorder:       recorder,
		namespaceRegex: regexp.MustCompile("^" + addressing.Prefix()),
	}
}

// HandleEvents parses one event frame and applies its operations atomically.
// Frames carrying neither a block commit nor state deltas (heartbeat pings)
// are a no-op.
func (h *EventHandler) HandleEvents(ctx context.Context, data []byte) error {
	block, operations, err := h.parseEvents(data)
	if err != nil {
		metrics.ParseErrors.Inc()
		return err
	}

	if block.BlockID == "" && len(operations) == 0 {
		h.logger.Debug().Msg("Ignoring heartbeat event frame")
		return nil
	}

	if err := h.store.ExecuteOperationsInBlock(ctx, operations, block); err != nil {
		return serrors.StorageWrap(err)
	}

	metrics.BlocksProcessed.Inc()
	metrics.OperationsApplied.Add(float64(len(operations)))
	if h.recorder != nil {
		h.recorder.RecordBlock(block.BlockNum)
	}
	h.logger.Info().
		Int64("block_num", block.BlockNum).
		Int("operations", len(operations)).
		Msg("Successfully submitted event data to reporting database")
	return nil
}

// parseEvents decodes a frame into the committed block and its operations,
// preserving the order state changes were delivered in.
func (h *EventHandler) parseEvents(data []byte) (storage.Block, []storage.Operation, error) {
	var eventList events_pb2.EventList
	if err := proto.Unmarshal(data, &eventList); err != nil {
		return storage.Block{}, nil, serrors.ParseWrap(err)
	}

	var commits []*events_pb2.Event
	var deltas []*events_pb2.Event
	for _, event := range eventList.GetEvents() {
		switch event.GetEventType() {
		case blockCommitEventType:
			commits = append(commits, event)
		case stateDeltaEventType:
			deltas = append(deltas, event)
		}
	}

	if len(commits) == 0 {
		if len(deltas) == 0 {
			// Heartbeat or otherwise irrelevant frame.
			return storage.Block{}, nil, nil
		}
		return storage.Block{}, nil, serrors.Parsef("no block event found")
	}

	block, err := parseBlock(commits)
	if err != nil {
		return storage.Block{}, nil, err
	}

	changes, err := h.parseStateChanges(deltas)
	if err != nil {
		return storage.Block{}, nil, err
	}

	operations := make([]storage.Operation, 0, len(changes))
	for _, change := range changes {
		op, err := parseOperation(change, block)
		if err != nil {
			return storage.Block{}, nil, err
		}
		operations = append(operations, op)
	}
	return block, operations, nil
}

// parseBlock derives the block descriptor from the commit events. When a
// frame carries duplicate commit events the last one delivered wins.
func parseBlock(commits []*events_pb2.Event) (storage.Block, error) {
	commit := commits[len(commits)-1]

	var blockNumAttr, blockIDAttr string
	var haveNum, haveID bool
	for _, attr := range commit.GetAttributes() {
		switch attr.GetKey() {
		case "block_num":
			blockNumAttr = attr.GetValue()
			haveNum = true
		case "block_id":
			blockIDAttr = attr.GetValue()
			haveID = true
		}
	}
	if !haveNum || !haveID {
		return storage.Block{}, serrors.Parsef("block event missing block_num or block_id attribute")
	}

	blockNum, err := strconv.ParseInt(blockNumAttr, 10, 64)
	if err != nil {
		return storage.Block{}, serrors.Parsef("invalid block_num attribute %q", blockNumAttr)
	}
	return storage.Block{BlockNum: blockNum, BlockID: blockIDAttr}, nil
}

// parseStateChanges flattens the state-delta events into the changes that
// belong to the certificate registry namespace, in delivery order.
func (h *EventHandler) parseStateChanges(deltas []*events_pb2.Event) ([]*txn_receipt_pb2.StateChange, error) {
	var changes []*txn_receipt_pb2.StateChange
	for _, event := range deltas {
		var changeList txn_receipt_pb2.StateChangeList
		if err := proto.Unmarshal(event.GetData(), &changeList); err != nil {
			return nil, serrors.ParseWrap(err)
		}
		for _, change := range changeList.GetStateChanges() {
			if !h.namespaceRegex.MatchString(change.GetAddress()) {
				metrics.StateChangesFiltered.Inc()
				continue
			}
			changes = append(changes, change)
		}
	}
	return changes, nil
}

// parseOperation classifies a state change by address and transforms its
// payload into the operation for that entity family. An in-namespace address
// that classifies as unrecognized indicates schema drift and fails the frame.
func parseOperation(change *txn_receipt_pb2.StateChange, block storage.Block) (storage.Operation, error) {
	space := addressing.AddressSpaceOf(change.GetAddress())
	transform, ok := transforms[space]
	if !ok {
		return nil, serrors.Parsef(
			"address %q did not match any state data type in the certificate registry namespace",
			change.GetAddress(),
		)
	}
	return transform(block.BlockNum, change.GetValue())
}
