package entities

import "fmt"

// AgentState is the behaviour state of a guest
type AgentState int

// Guest states. Despawned is terminal and only seen after the agent has been
// returned to the pool.
const (
	AgentWandering AgentState = iota
	AgentMovingToQueue
	AgentWaitingInQueue
	AgentMovingToRoom
	AgentUsingRoom
	AgentReportingRoom
	AgentReturningToSpawn
	AgentDespawned
)

func (s AgentState) String() string {
	switch s {
	case AgentWandering:
		return "wandering"
	case AgentMovingToQueue:
		return "moving_to_queue"
	case AgentWaitingInQueue:
		return "waiting_in_queue"
	case AgentMovingToRoom:
		return "moving_to_room"
	case AgentUsingRoom:
		return "using_room"
	case AgentReportingRoom:
		return "reporting_room"
	case AgentReturningToSpawn:
		return "returning_to_spawn"
	case AgentDespawned:
		return "despawned"
	default:
		return fmt.Sprintf("agent_state(%d)", int(s))
	}
}
