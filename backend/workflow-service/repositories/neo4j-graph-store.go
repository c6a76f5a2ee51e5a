package repositories

import (
	"context"
	"fmt"

	"projectflow/backend/workflow-service/models"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type Neo4jGraphStore struct {
	Driver neo4j.DriverWithContext
}

func NewNeo4jGraphStore(driver neo4j.DriverWithContext) *Neo4jGraphStore {
	return &Neo4jGraphStore{Driver: driver}
}

func (s *Neo4jGraphStore) readBool(ctx context.Context, query string, params map[string]any) (bool, error) {
	session := s.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return false, err
		}
		if res.Next(ctx) {
			val, ok := res.Record().Values[0].(bool)
			if !ok {
				return false, fmt.Errorf("unexpected result type")
			}
			return val, nil
		}
		return false, res.Err()
	})
	if err != nil {
		return false, err
	}
	return result.(bool), nil
}

func (s *Neo4jGraphStore) write(ctx context.Context, query string, params map[string]any) error {
	session := s.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, query, params)
		return nil, err
	})
	return err
}

// EnsureTaskNode creates the node or refreshes its attributes, keeping the blocked flag.
func (s *Neo4jGraphStore) EnsureTaskNode(ctx context.Context, task models.TaskNode) error {
	query := `
		MERGE (t:Task {id: $id})
		ON CREATE SET t.blocked = false
		SET t.projectId = $projectId,
			t.name = $name,
			t.description = $description,
			t.status = $status
	`
	return s.write(ctx, query, map[string]any{
		"id":          task.ID,
		"projectId":   task.ProjectID,
		"name":        task.Name,
		"description": task.Description,
		"status":      task.Status,
	})
}

func (s *Neo4jGraphStore) TasksExist(ctx context.Context, ids ...string) (bool, error) {
	query := `
		MATCH (t:Task) WHERE t.id IN $ids
		RETURN count(DISTINCT t.id) = size($ids) AS allExist
	`
	return s.readBool(ctx, query, map[string]any{"ids": ids})
}

func (s *Neo4jGraphStore) DependencyExists(ctx context.Context, fromID, toID string) (bool, error) {
	query := `
		OPTIONAL MATCH (to:Task {id: $toId})-[r:DEPENDS_ON]->(from:Task {id: $fromId})
		RETURN COUNT(r) > 0 AS exists
	`
	return s.readBool(ctx, query, map[string]any{"fromId": fromID, "toId": toID})
}

func (s *Neo4jGraphStore) PathExists(ctx context.Context, fromID, toID string) (bool, error) {
	query := `
		MATCH (from:Task {id: $fromId}), (to:Task {id: $toId})
		RETURN EXISTS((from)-[:DEPENDS_ON*1..]->(to)) AS hasPath
	`
	return s.readBool(ctx, query, map[string]any{"fromId": fromID, "toId": toID})
}

func (s *Neo4jGraphStore) CreateDependency(ctx context.Context, fromID, toID string) error {
	query := `
		MATCH (from:Task {id: $fromId}), (to:Task {id: $toId})
		MERGE (to)-[:DEPENDS_ON]->(from)
	`
	if err := s.write(ctx, query, map[string]any{"fromId": fromID, "toId": toID}); err != nil {
		return fmt.Errorf("failed to create dependency relation: %w", err)
	}
	return nil
}

func (s *Neo4jGraphStore) DeleteDependency(ctx context.Context, fromID, toID string) (bool, error) {
	session := s.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
			MATCH (to:Task {id: $toId})-[r:DEPENDS_ON]->(from:Task {id: $fromId})
			DELETE r
			RETURN count(r) AS deleted
		`
		res, err := tx.Run(ctx, query, map[string]any{"fromId": fromID, "toId": toID})
		if err != nil {
			return int64(0), err
		}
		if res.Next(ctx) {
			deleted, _ := res.Record().Values[0].(int64)
			return deleted, nil
		}
		return int64(0), res.Err()
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete dependency: %w", err)
	}
	return result.(int64) > 0, nil
}

func recordToNode(record *neo4j.Record) models.TaskNode {
	get := func(key string) string {
		v, _ := record.Get(key)
		s, _ := v.(string)
		return s
	}
	blocked, _ := record.Get("blocked")
	isBlocked, _ := blocked.(bool)

	return models.TaskNode{
		ID:          get("id"),
		ProjectID:   get("projectId"),
		Name:        get("name"),
		Description: get("description"),
		Status:      get("status"),
		Blocked:     isBlocked,
	}
}

func (s *Neo4jGraphStore) GetDependencies(ctx context.Context, taskID string) ([]models.TaskNode, error) {
	session := s.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
			MATCH (to:Task {id: $taskId})-[:DEPENDS_ON]->(from:Task)
			RETURN from.id AS id, from.projectId AS projectId, from.name AS name,
			       from.description AS description, from.status AS status, from.blocked AS blocked
			ORDER BY from.id
		`
		res, err := tx.Run(ctx, query, map[string]any{"taskId": taskID})
		if err != nil {
			return nil, err
		}

		dependencies := []models.TaskNode{}
		for res.Next(ctx) {
			dependencies = append(dependencies, recordToNode(res.Record()))
		}
		return dependencies, res.Err()
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.TaskNode), nil
}

func (s *Neo4jGraphStore) SetBlocked(ctx context.Context, taskID string, blocked bool) error {
	query := `
		MATCH (t:Task {id: $taskId})
		SET t.blocked = $isBlocked
	`
	if err := s.write(ctx, query, map[string]any{"taskId": taskID, "isBlocked": blocked}); err != nil {
		return fmt.Errorf("failed to update blocked status: %w", err)
	}
	return nil
}

func (s *Neo4jGraphStore) GetProjectGraph(ctx context.Context, projectID string) ([]models.TaskNode, []models.TaskDependencyRelation, error) {
	session := s.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	nodes, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
			MATCH (t:Task {projectId: $projectId})
			RETURN t.id AS id, t.projectId AS projectId, t.name AS name,
			       t.description AS description, t.status AS status, t.blocked AS blocked
			ORDER BY t.id
		`
		res, err := tx.Run(ctx, query, map[string]any{"projectId": projectID})
		if err != nil {
			return nil, err
		}
		out := []models.TaskNode{}
		for res.Next(ctx) {
			out = append(out, recordToNode(res.Record()))
		}
		return out, res.Err()
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load project nodes: %w", err)
	}

	edges, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
			MATCH (to:Task {projectId: $projectId})-[:DEPENDS_ON]->(from:Task)
			RETURN from.id AS fromId, to.id AS toId
			ORDER BY toId, fromId
		`
		res, err := tx.Run(ctx, query, map[string]any{"projectId": projectID})
		if err != nil {
			return nil, err
		}
		out := []models.TaskDependencyRelation{}
		for res.Next(ctx) {
			record := res.Record()
			from, _ := record.Get("fromId")
			to, _ := record.Get("toId")
			out = append(out, models.TaskDependencyRelation{FromTaskID: from.(string), ToTaskID: to.(string)})
		}
		return out, res.Err()
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load project dependencies: %w", err)
	}

	return nodes.([]models.TaskNode), edges.([]models.TaskDependencyRelation), nil
}
