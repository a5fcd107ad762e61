/*
 * Copyright 2025 Heliotrace Systems, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package adapter

import (
	"errors"
	"fmt"
	"sync"

	"github.com/heliotrace/solarmesh/pkg/models"
)

// ErrUnknownProtocol is returned when no driver is registered for a
// device's protocol.
var ErrUnknownProtocol = errors.New("no adapter registered for protocol")

// Creator builds an adapter for one device.
type Creator func(device *models.Device, deps Deps) (Adapter, error)

// Registry maps protocol slugs to adapter creators.
type Registry interface {
	Register(protocol models.Protocol, creator Creator)
	Get(device *models.Device, deps Deps) (Adapter, error)
	Protocols() []models.Protocol
}

type adapterRegistry struct {
	mu        sync.RWMutex
	factories map[models.Protocol]Creator
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() Registry {
	return &adapterRegistry{
		factories: make(map[models.Protocol]Creator),
	}
}

// Register adds a creator for a protocol, replacing any previous one.
func (r *adapterRegistry) Register(protocol models.Protocol, creator Creator) {
	r.mu.Lock()
	r.factories[protocol] = creator
	r.mu.Unlock()
}

// Get builds an adapter for the device's protocol.
func (r *adapterRegistry) Get(device *models.Device, deps Deps) (Adapter, error) {
	if device == nil {
		return nil, errors.New("device is nil")
	}

	r.mu.RLock()
	creator, ok := r.factories[device.Protocol]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (device %s)", ErrUnknownProtocol, device.Protocol, device.ID)
	}

	return creator(device, deps)
}

// Protocols lists the registered protocol slugs.
func (r *adapterRegistry) Protocols() []models.Protocol {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Protocol, 0, len(r.factories))
	for protocol := range r.factories {
		out = append(out, protocol)
	}

	return out
}
