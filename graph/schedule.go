package graph

import (
	"fmt"
	"io"

	"golang.org/x/exp/slog"

	. "github.com/moskvax/sif/util"
)

//*******************************************
// schedule import
//*******************************************

// Reads departures from a ';' separated file with the columns line_id,
// trip_id, block_id, route_id, departure_time and elapsed_time (seconds).
func (self *MemoryGraph) LoadDepartures(r io.Reader) (int, error) {
	count := 0
	lines := NewDict[uint32, bool](10)
	err := ReadCSV[TransitDeparture](r, ';', func(departure TransitDeparture) bool {
		self._AppendDeparture(departure)
		lines[departure.LineId] = true
		count += 1
		return true
	})
	// rows read before a failure stay usable
	self._SortDepartures(lines)
	if err != nil {
		return count, fmt.Errorf("failed to load departures: %w", err)
	}
	slog.Debug("departures loaded", "count", count)
	return count, nil
}

// Reads transfers from a ';' separated file with the columns from_stop,
// to_stop, transfer_type (0-3) and min_transfer_time.
func (self *MemoryGraph) LoadTransfers(r io.Reader) (int, error) {
	count := 0
	var invalid error
	err := ReadCSV[TransitTransfer](r, ';', func(transfer TransitTransfer) bool {
		if transfer.Type > TRANSFER_NOT_POSSIBLE {
			invalid = fmt.Errorf("unknown transfer type %v between stops %v and %v", transfer.Type, transfer.FromStop, transfer.ToStop)
			return false
		}
		self.AddTransfer(transfer)
		count += 1
		return true
	})
	if err == nil {
		err = invalid
	}
	if err != nil {
		return count, fmt.Errorf("failed to load transfers: %w", err)
	}
	slog.Debug("transfers loaded", "count", count)
	return count, nil
}
