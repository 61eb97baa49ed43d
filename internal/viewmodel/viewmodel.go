package viewmodel

import (
	"context"
	"fmt"
	"sync"

	"fyne.io/fyne/v2/data/binding"
	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ytget/mars-photos/internal/data"
	"github.com/ytget/mars-photos/internal/model"
	"github.com/ytget/mars-photos/internal/network"
)

// MarsViewModel owns the state of the most recent photos request
type MarsViewModel struct {
	repository data.PhotosRepository
	scope      *Scope
	log        logrus.FieldLogger

	// mu serializes writes to state against Close
	mu     sync.Mutex
	closed bool
	state  binding.Untyped
}

// New creates a view model and immediately starts one load
func New(repository data.PhotosRepository, scope *Scope, log logrus.FieldLogger) *MarsViewModel {
	if log == nil {
		log = logrus.StandardLogger()
	}

	vm := &MarsViewModel{
		repository: repository,
		scope:      scope,
		log:        log.WithField("component", "viewmodel"),
		state:      binding.NewUntyped(),
	}
	_ = vm.state.Set(model.Loading())

	vm.GetMarsPhotos()
	return vm
}

// NewFromContainer creates a view model using the container's repository
func NewFromContainer(container data.AppContainer, scope *Scope, log logrus.FieldLogger) *MarsViewModel {
	return New(container.PhotosRepository(), scope, log)
}

// State returns a snapshot of the current state
func (vm *MarsViewModel) State() model.MarsUiState {
	value, err := vm.state.Get()
	if err != nil {
		return model.Loading()
	}
	state, ok := value.(model.MarsUiState)
	if !ok {
		return model.Loading()
	}
	return state
}

// StateItem exposes the state binding for listeners. It is read only: the
// returned item has no setter.
func (vm *MarsViewModel) StateItem() binding.DataItem {
	return vm.state
}

// GetMarsPhotos publishes Loading and starts a new retrieval. Overlapping
// calls are not deduplicated; the last one to finish wins. Calls after Close
// do nothing.
func (vm *MarsViewModel) GetMarsPhotos() pond.Task {
	attemptID := generateAttemptID()
	log := vm.log.WithField("attempt", attemptID)

	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		log.Debug("view model closed, load skipped")
		return nil
	}
	_ = vm.state.Set(model.Loading())
	vm.mu.Unlock()

	log.Debug("loading mars photos")

	return vm.scope.Launch(func(ctx context.Context) error {
		return vm.load(ctx, log)
	})
}

// load runs one attempt. Transport failures become the Error state; any other
// failure is returned to the scope without touching the state.
func (vm *MarsViewModel) load(ctx context.Context, log logrus.FieldLogger) error {
	photos, err := vm.repository.GetMarsPhotos(ctx)
	if err != nil {
		if network.IsTransport(err) {
			log.WithError(err).Warn("failed to load mars photos")
			vm.publish(ctx, model.Error())
			return nil
		}
		return fmt.Errorf("load mars photos: %w", err)
	}

	log.WithField("count", len(photos)).Info("mars photos loaded")
	vm.publish(ctx, model.Success(model.SuccessSummary(len(photos))))
	return nil
}

// publish writes a terminal state unless the scope has ended
func (vm *MarsViewModel) publish(ctx context.Context, state model.MarsUiState) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.closed || ctx.Err() != nil {
		return
	}
	_ = vm.state.Set(state)
}

// Close ends the owning scope. No state is published after Close returns.
func (vm *MarsViewModel) Close() {
	vm.mu.Lock()
	vm.closed = true
	vm.mu.Unlock()

	vm.scope.Close()
}

// generateAttemptID generates a unique id for one load attempt
func generateAttemptID() string {
	return "load-" + uuid.NewString()
}
