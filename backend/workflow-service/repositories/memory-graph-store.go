package repositories

import (
	"context"
	"sort"
	"sync"

	"projectflow/backend/workflow-service/models"
)

type edge struct {
	from, to string
}

// MemoryGraphStore holds nodes in a map and edges as a set keyed by (from, to).
type MemoryGraphStore struct {
	mu    sync.RWMutex
	nodes map[string]models.TaskNode
	edges map[edge]struct{}
}

func NewMemoryGraphStore() *MemoryGraphStore {
	return &MemoryGraphStore{
		nodes: make(map[string]models.TaskNode),
		edges: make(map[edge]struct{}),
	}
}

func (s *MemoryGraphStore) EnsureTaskNode(_ context.Context, task models.TaskNode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.nodes[task.ID]; ok {
		task.Blocked = existing.Blocked
	} else {
		task.Blocked = false
	}
	s.nodes[task.ID] = task
	return nil
}

func (s *MemoryGraphStore) TasksExist(_ context.Context, ids ...string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range ids {
		if _, ok := s.nodes[id]; !ok {
			return false, nil
		}
	}
	return true, nil
}

func (s *MemoryGraphStore) DependencyExists(_ context.Context, fromID, toID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.edges[edge{from: fromID, to: toID}]
	return ok, nil
}

// PathExists walks DEPENDS_ON links starting at fromID looking for toID.
func (s *MemoryGraphStore) PathExists(_ context.Context, fromID, toID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	visited := map[string]bool{fromID: true}
	stack := []string{fromID}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for e := range s.edges {
			// e.to depends on e.from
			if e.to != current {
				continue
			}
			if e.from == toID {
				return true, nil
			}
			if !visited[e.from] {
				visited[e.from] = true
				stack = append(stack, e.from)
			}
		}
	}
	return false, nil
}

func (s *MemoryGraphStore) CreateDependency(_ context.Context, fromID, toID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.edges[edge{from: fromID, to: toID}] = struct{}{}
	return nil
}

func (s *MemoryGraphStore) DeleteDependency(_ context.Context, fromID, toID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := edge{from: fromID, to: toID}
	if _, ok := s.edges[key]; !ok {
		return false, nil
	}
	delete(s.edges, key)
	return true, nil
}

func (s *MemoryGraphStore) GetDependencies(_ context.Context, taskID string) ([]models.TaskNode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deps := []models.TaskNode{}
	for e := range s.edges {
		if e.to == taskID {
			deps = append(deps, s.nodes[e.from])
		}
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i].ID < deps[j].ID })
	return deps, nil
}

func (s *MemoryGraphStore) SetBlocked(_ context.Context, taskID string, blocked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.nodes[taskID]
	if !ok {
		return nil
	}
	node.Blocked = blocked
	s.nodes[taskID] = node
	return nil
}

func (s *MemoryGraphStore) GetProjectGraph(_ context.Context, projectID string) ([]models.TaskNode, []models.TaskDependencyRelation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := []models.TaskNode{}
	for _, n := range s.nodes {
		if n.ProjectID == projectID {
			nodes = append(nodes, n)
		}
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	deps := []models.TaskDependencyRelation{}
	for e := range s.edges {
		if s.nodes[e.to].ProjectID == projectID {
			deps = append(deps, models.TaskDependencyRelation{FromTaskID: e.from, ToTaskID: e.to})
		}
	}
	sort.Slice(deps, func(i, j int) bool {
		if deps[i].ToTaskID != deps[j].ToTaskID {
			return deps[i].ToTaskID < deps[j].ToTaskID
		}
		return deps[i].FromTaskID < deps[j].FromTaskID
	})
	return nodes, deps, nil
}
