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

package dispatch

import (
	"sort"
	"sync"
)

// Registry maps command-type slugs to executors.
type Registry interface {
	Register(commandType string, fn ExecutorFunc)
	Lookup(commandType string) (ExecutorFunc, bool)
	Types() []string
}

type executorRegistry struct {
	mu        sync.RWMutex
	executors map[string]ExecutorFunc
}

// NewRegistry creates an empty executor registry.
func NewRegistry() Registry {
	return &executorRegistry{
		executors: make(map[string]ExecutorFunc),
	}
}

// Register adds an executor for a command type, replacing any previous one.
// A nil executor unregisters the type.
func (r *executorRegistry) Register(commandType string, fn ExecutorFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fn == nil {
		delete(r.executors, commandType)
		return
	}

	r.executors[commandType] = fn
}

// Lookup returns the executor for a command type.
func (r *executorRegistry) Lookup(commandType string) (ExecutorFunc, bool) {
	r.mu.RLock()
	fn, ok := r.executors[commandType]
	r.mu.RUnlock()

	return fn, ok
}

// Types lists the registered command types, sorted.
func (r *executorRegistry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.executors))
	for commandType := range r.executors {
		out = append(out, commandType)
	}

	sort.Strings(out)

	return out
}
