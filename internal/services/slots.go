package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"turmas/internal/domain"
	"turmas/internal/logging"
	"turmas/internal/ports"
)

const (
	// SlotCount is the number of save slots
	SlotCount = 5

	slotKeyPrefix      = "slot-"
	slotPayloadVersion = 1
)

// slotPayload is the stored value of a slot
type slotPayload struct {
	SavedAt time.Time            `json:"saved_at"`
	State   *domain.SessionState `json:"state"`
	Version int                  `json:"version"`
}

// SlotService saves and restores session states in numbered slots
type SlotService struct {
	now  func() time.Time
	repo ports.SlotRepository
}

// NewSlotService creates a new SlotService
func NewSlotService(repo ports.SlotRepository) *SlotService {
	return &SlotService{
		now:  time.Now,
		repo: repo,
	}
}

// SlotKey returns the storage key of slot n
func SlotKey(n int) (string, error) {
	if n < 1 || n > SlotCount {
		return "", fmt.Errorf("%w: %d (expected 1-%d)", domain.ErrInvalidSlot, n, SlotCount)
	}
	return slotKeyPrefix + strconv.Itoa(n), nil
}

// Save stores state in slot n
func (s *SlotService) Save(ctx context.Context, n int, state *domain.SessionState) error {
	key, err := SlotKey(n)
	if err != nil {
		return err
	}
	logging.Logger.Debug("Saving slot", "slot", n)

	value, err := json.Marshal(slotPayload{
		SavedAt: s.now().UTC(),
		State:   state,
		Version: slotPayloadVersion,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to encode slot %d: %w", domain.ErrPersistence, n, err)
	}

	if err := s.repo.Set(ctx, key, string(value)); err != nil {
		logging.Logger.Error("Failed to save slot", "slot", n, "error", err)
		return fmt.Errorf("%w: failed to save slot %d: %w", domain.ErrPersistence, n, err)
	}

	logging.Logger.Info("Slot saved", "slot", n, "disciplines", len(state.Selected))
	return nil
}

// Load reads the state stored in slot n. The state is returned as stored;
// Timetable.Replace sanitizes it against the current index.
func (s *SlotService) Load(ctx context.Context, n int) (*domain.SessionState, error) {
	key, err := SlotKey(n)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("Loading slot", "slot", n)

	value, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrSlotEmpty) {
			logging.Logger.Error("Failed to load slot", "slot", n, "error", err)
		}
		return nil, fmt.Errorf("%w: failed to load slot %d: %w", domain.ErrPersistence, n, err)
	}

	payload, err := decodeSlot(value)
	if err != nil {
		logging.Logger.Error("Slot is corrupt", "slot", n, "error", err)
		return nil, fmt.Errorf("%w: slot %d is corrupt: %w", domain.ErrPersistence, n, err)
	}

	logging.Logger.Info("Slot loaded", "slot", n, "saved_at", payload.SavedAt)
	return payload.State, nil
}

// LoadInto replaces the timetable state with slot n. Nothing changes when the
// slot cannot be read.
func (s *SlotService) LoadInto(ctx context.Context, n int, tt *domain.Timetable) (bool, error) {
	state, err := s.Load(ctx, n)
	if err != nil {
		return false, err
	}
	return tt.Replace(state), nil
}

// Delete empties slot n. Deleting an empty slot fails with domain.ErrPersistence wrapping
// domain.ErrSlotEmpty.
func (s *SlotService) Delete(ctx context.Context, n int) error {
	key, err := SlotKey(n)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, key); err != nil {
		if errors.Is(err, domain.ErrSlotEmpty) {
			return fmt.Errorf("%w: slot %d: %w", domain.ErrPersistence, n, domain.ErrSlotEmpty)
		}
		logging.Logger.Warn("Failed to delete slot", "slot", n, "error", err)
		return fmt.Errorf("%w: failed to delete slot %d: %w", domain.ErrPersistence, n, err)
	}

	logging.Logger.Info("Slot deleted", "slot", n)
	return nil
}

// List returns every slot, occupied or not, in slot order
func (s *SlotService) List(ctx context.Context) ([]SlotInfo, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list slots: %w", domain.ErrPersistence, err)
	}

	infos := make([]SlotInfo, SlotCount)
	for i := range infos {
		infos[i].Number = i + 1
	}

	for _, rec := range records {
		n, ok := slotNumber(rec.Key)
		if !ok {
			logging.Logger.Debug("Ignoring unknown slot key", "key", rec.Key)
			continue
		}
		info := &infos[n-1]
		info.Occupied = true
		info.Revision = rec.Revision
		info.SavedAt = rec.UpdatedAt

		payload, err := decodeSlot(rec.Value)
		if err != nil {
			logging.Logger.Warn("Slot is corrupt", "slot", n, "error", err)
			continue
		}
		info.Disciplines = len(payload.State.Selected)
		if !payload.SavedAt.IsZero() {
			info.SavedAt = payload.SavedAt
		}
	}
	return infos, nil
}

// decodeSlot accepts the versioned payload and bare states written before
// payloads were versioned
func decodeSlot(value string) (*slotPayload, error) {
	var payload slotPayload
	if err := json.Unmarshal([]byte(value), &payload); err != nil {
		return nil, err
	}
	if payload.Version > slotPayloadVersion {
		return nil, fmt.Errorf("unsupported slot version %d", payload.Version)
	}
	if payload.State == nil {
		var state domain.SessionState
		if err := json.Unmarshal([]byte(value), &state); err != nil {
			return nil, err
		}
		payload.State = &state
	}
	if payload.State.Selected == nil {
		payload.State.Selected = map[string][]string{}
	}
	return &payload, nil
}

func slotNumber(key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, slotKeyPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > SlotCount {
		return 0, false
	}
	return n, true
}
