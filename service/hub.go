package service

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Hub is the runtime container for service instances
// Starts services in dependency order and stops them in reverse
type Hub struct {
	mu       sync.Mutex
	log      *logrus.Entry
	services map[string]Service
	order    []string // Registration order, keeps the sort stable
	started  []string // Services that completed Start(), for rollback
}

// NewHub creates an empty service hub
func NewHub(log *logrus.Entry) *Hub {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Hub{
		log:      log,
		services: make(map[string]Service),
	}
}

// Register adds a service instance to the hub
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("service already registered: %s", name)
	}
	h.services[name] = svc
	h.order = append(h.order, name)
	return nil
}

// Get retrieves a service by name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	svc, ok := h.services[name]
	return svc, ok
}

// StartAll starts every service in dependency order
// On failure, stops already-started services in reverse order
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	sorted, err := h.topologicalSort()
	if err != nil {
		return err
	}

	h.started = nil
	for _, name := range sorted {
		if err := h.services[name].Start(); err != nil {
			h.stopStarted()
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.started = append(h.started, name)
		h.log.WithField("service", name).Debug("service started")
	}
	return nil
}

// StopAll stops all started services in reverse start order
// Errors are logged; every service gets Stop called
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopStarted()
}

// Started returns started service names in start order
func (h *Hub) Started() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.started))
	copy(out, h.started)
	return out
}

func (h *Hub) stopStarted() {
	for i := len(h.started) - 1; i >= 0; i-- {
		name := h.started[i]
		if err := h.services[name].Stop(); err != nil {
			h.log.WithError(err).WithField("service", name).Warn("service stop failed")
		}
	}
	h.started = nil
}

// topologicalSort computes start order using Kahn's algorithm
func (h *Hub) topologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(h.services))
	dependents := make(map[string][]string)

	for _, name := range h.order {
		inDegree[name] = 0
	}
	for _, name := range h.order {
		for _, dep := range h.services[name].Dependencies() {
			if _, exists := h.services[dep]; !exists {
				return nil, fmt.Errorf("service %s depends on unregistered service: %s", name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for _, name := range h.order {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	result := make([]string, 0, len(h.services))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		result = append(result, name)

		for _, dependent := range dependents[name] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(result) != len(h.services) {
		return nil, fmt.Errorf("circular dependency detected in services")
	}
	return result, nil
}
