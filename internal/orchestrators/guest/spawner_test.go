package guest_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/innkeeper/internal/engine/headless"
	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/orchestrators/guest"
	"github.com/KirkDiggler/innkeeper/internal/pkg/idgen"
	"github.com/KirkDiggler/innkeeper/internal/pkg/notify"
	countermock "github.com/KirkDiggler/innkeeper/internal/services/counter/mock"
	"github.com/KirkDiggler/innkeeper/internal/services/ledger"
	ledgermock "github.com/KirkDiggler/innkeeper/internal/services/ledger/mock"
	roomsmock "github.com/KirkDiggler/innkeeper/internal/services/rooms/mock"
	"github.com/KirkDiggler/innkeeper/internal/testutils"
)

const guestID = "guest_1"

var (
	spawnPoint = entities.Vec3{X: 1, Z: 1}
	linePoint  = entities.Vec3{X: 1, Z: 2}
	testRoom   = entities.Room{
		ID:         "Room_5_5",
		Center:     entities.Vec3{X: 5, Z: 5},
		Bounds:     entities.AABB{Min: entities.Vec3{X: 3, Z: 3}, Max: entities.Vec3{X: 7, Y: 3, Z: 7}},
		TotalPrice: 180,
	}
)

type SpawnerTestSuite struct {
	suite.Suite
	ctx    context.Context
	ctrl   *gomock.Controller
	world  *headless.World
	rooms  *roomsmock.MockRegistry
	queue  *countermock.MockQueue
	ledger *ledgermock.MockLedger
	bus    events.EventBus
}

func (s *SpawnerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.rooms = roomsmock.NewMockRegistry(s.ctrl)
	s.queue = countermock.NewMockQueue(s.ctrl)
	s.ledger = ledgermock.NewMockLedger(s.ctrl)
	s.bus = events.NewBus()

	var err error
	s.world, err = headless.NewWorld(&headless.Config{
		WalkableAreas: []entities.AABB{{Max: entities.Vec3{X: 20, Y: 3, Z: 20}}},
		Roller:        testutils.NewScriptedRoller(1),
	})
	s.Require().NoError(err)
}

func (s *SpawnerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// quietInterval keeps the spawn timer from firing while a test drives its own guests
const quietInterval = 1000

// newSpawner builds a spawner whose dice always roll the given value. A roll
// of 1000 fails every chance below certainty and takes the top of every span.
func (s *SpawnerTestSuite) newSpawner(roll int, withQueue bool) guest.Service {
	return s.newSpawnerEvery(roll, withQueue, quietInterval)
}

func (s *SpawnerTestSuite) newSpawnerEvery(roll int, withQueue bool, interval float64) guest.Service {
	cfg := &guest.Config{
		Navigator:     s.world,
		Rooms:         s.rooms,
		Ledger:        s.ledger,
		Roller:        testutils.NewScriptedRoller(roll),
		IDs:           idgen.NewSequential("guest"),
		EventBus:      s.bus,
		SpawnPoint:    spawnPoint,
		PoolSize:      3,
		SpawnInterval: interval,
	}
	if withQueue {
		cfg.Queue = s.queue
	}

	svc, err := guest.NewSpawner(cfg)
	s.Require().NoError(err)
	return svc
}

func (s *SpawnerTestSuite) tick(svc guest.Service, dt float64) *guest.TickOutput {
	out, err := svc.Tick(s.ctx, dt)
	s.Require().NoError(err)
	return out
}

func (s *SpawnerTestSuite) state(svc guest.Service) entities.AgentState {
	agents := svc.Agents()
	s.Require().Len(agents, 1)
	return agents[0].State
}

// joinLine takes a queueing guest through joining and reaching the desk
func (s *SpawnerTestSuite) joinLine(svc guest.Service) {
	s.queue.EXPECT().TryJoin(guestID).Return(true)
	s.tick(svc, 0.1)
	s.Equal(entities.AgentWaitingInQueue, s.state(svc))

	s.world.Step(10)
	s.queue.EXPECT().CanReceiveService(guestID).Return(true)
	s.queue.EXPECT().StartService(guestID).Return(true)
	s.tick(svc, 0.1)
}

// driveToStay spawns a guest and walks it into a room
func (s *SpawnerTestSuite) driveToStay(svc guest.Service) {
	s.queue.EXPECT().Position(guestID).Return(linePoint, true).AnyTimes()

	_, err := svc.Spawn(s.ctx)
	s.Require().NoError(err)
	s.Equal(entities.AgentMovingToQueue, s.state(svc))

	s.joinLine(svc)

	s.queue.EXPECT().TakeCompleted(guestID).Return(true)
	s.rooms.EXPECT().TryAssign(guestID).Return(testRoom, true)
	s.tick(svc, 0.1)
	s.Equal(entities.AgentMovingToRoom, s.state(svc))
	s.Equal(testRoom.ID, svc.Agents()[0].RoomID)

	s.world.Step(10)
	s.tick(svc, 0.1)
	s.Equal(entities.AgentUsingRoom, s.state(svc))
}

func (s *SpawnerTestSuite) TestNewSpawner_RequiresDependencies() {
	_, err := guest.NewSpawner(&guest.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SpawnerTestSuite) TestNewSpawner_RejectsBadTimings() {
	timings := guest.DefaultTimings()
	timings.WanderChance = 1.5

	_, err := guest.NewSpawner(&guest.Config{
		Navigator: s.world,
		Rooms:     s.rooms,
		Roller:    testutils.NewScriptedRoller(1),
		IDs:       idgen.NewSequential("guest"),
		Timings:   timings,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SpawnerTestSuite) TestSpawn_WithoutCounterWanders() {
	svc := s.newSpawner(1, false)

	out, err := svc.Spawn(s.ctx)
	s.Require().NoError(err)
	s.Equal(guestID, out.AgentID)
	s.Equal(entities.AgentWandering, s.state(svc))
	s.Equal(2, svc.Pooled())

	pos, ok := s.world.Position(guestID)
	s.Require().True(ok)
	s.Equal(spawnPoint, pos)
}

func (s *SpawnerTestSuite) TestSpawn_WithoutCounterMayLeave() {
	svc := s.newSpawner(1000, false)

	_, err := svc.Spawn(s.ctx)
	s.Require().NoError(err)
	s.Equal(entities.AgentReturningToSpawn, s.state(svc))

	out := s.tick(svc, 0.1)
	s.Equal([]string{guestID}, out.Returned)
	s.Equal(0, svc.Active())
	s.Equal(3, svc.Pooled())
}

func (s *SpawnerTestSuite) TestSpawn_PoolExhausted() {
	svc := s.newSpawner(1, false)
	for i := 0; i < 3; i++ {
		_, err := svc.Spawn(s.ctx)
		s.Require().NoError(err)
	}

	_, err := svc.Spawn(s.ctx)
	s.True(errors.IsResourceExhausted(err))
}

func (s *SpawnerTestSuite) TestTick_SpawnsOnInterval() {
	svc := s.newSpawnerEvery(1, false, 2)

	s.Empty(s.tick(svc, 1).Spawned)
	s.Equal([]string{"guest_1"}, s.tick(svc, 1).Spawned)
	s.Empty(s.tick(svc, 1).Spawned)
	s.Equal([]string{"guest_2"}, s.tick(svc, 1).Spawned)
	s.Equal([]string{"guest_3"}, s.tick(svc, 2).Spawned)

	out := s.tick(svc, 2)
	s.Empty(out.Spawned)
	s.Equal(3, out.Active)
}

func (s *SpawnerTestSuite) TestWandering_EndsByLeaving() {
	svc := s.newSpawner(1, false)
	_, err := svc.Spawn(s.ctx)
	s.Require().NoError(err)

	// the shortest wander is 15 seconds
	s.tick(svc, 14)
	s.Equal(entities.AgentWandering, s.state(svc))
	s.tick(svc, 1.5)
	s.Equal(entities.AgentReturningToSpawn, s.state(svc))
}

func (s *SpawnerTestSuite) TestFullStay_ChecksOutAndPays() {
	svc := s.newSpawner(1000, true)
	s.driveToStay(svc)

	// the longest stay is 35 seconds
	s.tick(svc, 36)
	s.Equal(entities.AgentReportingRoom, s.state(svc))

	s.queue.EXPECT().TryJoin(guestID).Return(true)
	s.tick(svc, 0.1)
	s.Equal(entities.AgentWaitingInQueue, s.state(svc))
	s.Equal(testRoom.ID, svc.Agents()[0].RoomID)

	s.world.Step(10)
	s.queue.EXPECT().CanReceiveService(guestID).Return(true)
	s.queue.EXPECT().StartService(guestID).Return(true)
	s.tick(svc, 0.1)

	gomock.InOrder(
		s.queue.EXPECT().TakeCompleted(guestID).Return(true),
		s.rooms.EXPECT().CompleteStay(guestID, testRoom.ID).Return(&entities.UsageRecord{
			AgentID: guestID, RoomID: testRoom.ID, Price: 180, At: time.Unix(0, 0),
		}, nil),
		s.ledger.EXPECT().PostCharge(s.ctx, &ledger.PostChargeInput{
			AgentID: guestID, Amount: 180, RoomID: testRoom.ID,
		}).Return(&ledger.PostChargeOutput{Unpaid: 180}, nil),
		s.ledger.EXPECT().Settle(s.ctx, &ledger.SettleInput{AgentID: guestID}).
			Return(&ledger.SettleOutput{Amount: 180, Balance: 1180}, nil),
	)
	s.tick(svc, 0.1)
	s.Equal(entities.AgentReturningToSpawn, s.state(svc))
	s.Empty(svc.Agents()[0].RoomID)

	s.world.Step(10)
	s.queue.EXPECT().Leave(guestID)
	out := s.tick(svc, 0.1)
	s.Equal([]string{guestID}, out.Returned)
	s.Equal(0, svc.Active())

	_, onNav := s.world.Position(guestID)
	s.False(onNav)
}

func (s *SpawnerTestSuite) TestNoFreeRoom_TurnedAway() {
	svc := s.newSpawner(1000, true)
	s.queue.EXPECT().Position(guestID).Return(linePoint, true).AnyTimes()

	_, err := svc.Spawn(s.ctx)
	s.Require().NoError(err)
	s.joinLine(svc)

	s.queue.EXPECT().TakeCompleted(guestID).Return(true)
	s.rooms.EXPECT().TryAssign(guestID).Return(entities.Room{}, false)
	s.tick(svc, 0.1)
	s.Equal(entities.AgentReturningToSpawn, s.state(svc))
}

func (s *SpawnerTestSuite) TestLineFull_WithoutRoomGivesUp() {
	svc := s.newSpawner(1000, true)
	_, err := svc.Spawn(s.ctx)
	s.Require().NoError(err)

	s.queue.EXPECT().TryJoin(guestID).Return(false)
	s.tick(svc, 0.1)
	s.Equal(entities.AgentReturningToSpawn, s.state(svc))
}

func (s *SpawnerTestSuite) TestLineFull_WithRoomRetries() {
	svc := s.newSpawner(1000, true)
	s.driveToStay(svc)
	s.tick(svc, 36)

	s.queue.EXPECT().TryJoin(guestID).Return(false)
	s.tick(svc, 0.1)
	s.Equal(entities.AgentMovingToQueue, s.state(svc))

	// retry waits the longest span of 3 seconds
	s.tick(svc, 2)
	s.queue.EXPECT().TryJoin(guestID).Return(true)
	s.tick(svc, 1.5)
	s.Equal(entities.AgentWaitingInQueue, s.state(svc))
}

func (s *SpawnerTestSuite) TestOffSurface_ReleasesEverything() {
	svc := s.newSpawner(1000, true)
	s.driveToStay(svc)

	s.Require().NoError(s.world.Warp(guestID, entities.Vec3{X: 50, Z: 50}))
	s.rooms.EXPECT().Release(testRoom.ID).Return(true)
	s.queue.EXPECT().Leave(guestID)

	out := s.tick(svc, 0.1)
	s.Equal([]string{guestID}, out.Returned)
	s.Equal(0, svc.Active())
}

func (s *SpawnerTestSuite) TestDespawn_ReleasesRoom() {
	svc := s.newSpawner(1000, true)
	s.driveToStay(svc)

	s.rooms.EXPECT().Release(testRoom.ID).Return(true)
	s.queue.EXPECT().Leave(guestID)
	s.True(svc.Despawn(s.ctx, guestID))
	s.False(svc.Despawn(s.ctx, guestID))
	s.Equal(3, svc.Pooled())
}

func (s *SpawnerTestSuite) TestReturnAll() {
	svc := s.newSpawner(1, false)
	for i := 0; i < 2; i++ {
		_, err := svc.Spawn(s.ctx)
		s.Require().NoError(err)
	}

	s.Equal(2, svc.ReturnAll(s.ctx))
	s.Equal(0, svc.Active())
	s.Equal(3, svc.Pooled())
}

func (s *SpawnerTestSuite) TestCheckoutFailure_ReturnsGuest() {
	svc := s.newSpawner(1000, true)
	s.driveToStay(svc)
	s.tick(svc, 36)
	s.queue.EXPECT().TryJoin(guestID).Return(true)
	s.tick(svc, 0.1)
	s.world.Step(10)
	s.queue.EXPECT().CanReceiveService(guestID).Return(true)
	s.queue.EXPECT().StartService(guestID).Return(true)
	s.tick(svc, 0.1)

	s.queue.EXPECT().TakeCompleted(guestID).Return(true)
	s.rooms.EXPECT().CompleteStay(guestID, testRoom.ID).Return(&entities.UsageRecord{Price: 180}, nil)
	s.ledger.EXPECT().PostCharge(s.ctx, gomock.Any()).Return(nil, errors.Unavailable("wallet offline"))
	s.queue.EXPECT().Leave(guestID)

	out := s.tick(svc, 0.1)
	s.Equal([]string{guestID}, out.Returned)
}

func (s *SpawnerTestSuite) TestCheckoutInvariant_StopsTick() {
	svc := s.newSpawner(1000, true)
	s.driveToStay(svc)
	s.tick(svc, 36)
	s.queue.EXPECT().TryJoin(guestID).Return(true)
	s.tick(svc, 0.1)
	s.world.Step(10)
	s.queue.EXPECT().CanReceiveService(guestID).Return(true)
	s.queue.EXPECT().StartService(guestID).Return(true)
	s.tick(svc, 0.1)

	s.queue.EXPECT().TakeCompleted(guestID).Return(true)
	s.rooms.EXPECT().CompleteStay(guestID, testRoom.ID).
		Return(nil, errors.Invariant("room held twice"))

	_, err := svc.Tick(s.ctx, 0.1)
	s.Require().Error(err)
	s.True(errors.IsInvariant(err))
}

func (s *SpawnerTestSuite) TestInvariant_KeepsPoolAndActiveDisjoint() {
	const waiting, checking = "guest_1", "guest_2"
	svc := s.newSpawner(1000, true)

	s.queue.EXPECT().Position(gomock.Any()).Return(linePoint, true).AnyTimes()
	s.queue.EXPECT().TryJoin(gomock.Any()).Return(true).AnyTimes()
	s.queue.EXPECT().CanReceiveService(waiting).Return(false).AnyTimes()
	s.queue.EXPECT().Leave(gomock.Any()).AnyTimes()

	for range 2 {
		_, err := svc.Spawn(s.ctx)
		s.Require().NoError(err)
	}
	s.tick(svc, 0.1)
	s.world.Step(10)

	// the second guest gets a room while the first holds its place in line
	s.queue.EXPECT().CanReceiveService(checking).Return(true)
	s.queue.EXPECT().StartService(checking).Return(true)
	s.tick(svc, 0.1)
	s.queue.EXPECT().TakeCompleted(checking).Return(true)
	s.rooms.EXPECT().TryAssign(checking).Return(testRoom, true)
	s.tick(svc, 0.1)
	s.world.Step(10)
	s.tick(svc, 0.1)
	s.tick(svc, 36)
	s.tick(svc, 0.1)
	s.world.Step(10)
	s.queue.EXPECT().CanReceiveService(checking).Return(true)
	s.queue.EXPECT().StartService(checking).Return(true)
	s.tick(svc, 0.1)

	// the first guest leaves in the same pass that fails
	s.Require().NoError(s.world.Warp(waiting, entities.Vec3{X: 50, Z: 50}))
	s.queue.EXPECT().TakeCompleted(checking).Return(true)
	s.rooms.EXPECT().CompleteStay(checking, testRoom.ID).
		Return(nil, errors.Invariant("room held twice"))

	_, err := svc.Tick(s.ctx, 0.1)
	s.Require().Error(err)
	s.True(errors.IsInvariant(err))

	s.Equal(1, svc.Active())
	s.Equal(2, svc.Pooled())

	s.Equal(1, svc.ReturnAll(s.ctx))
	s.Equal(0, svc.Active())
	s.Equal(3, svc.Pooled())
}

func (s *SpawnerTestSuite) TestKnownRooms_FollowsEvents() {
	svc := s.newSpawner(1, false)

	err := notify.Publish(s.ctx, s.bus, notify.TopicRoomsUpdated, notify.NewSource("test", "test"), notify.Data{
		"count":     3,
		"available": 2,
		"rooms":     []string{"Room_1_1", "Room_4_1", "Room_7_1"},
		"free":      []string{"Room_1_1", "Room_7_1"},
	})
	s.Require().NoError(err)

	known := svc.KnownRooms()
	s.Equal([]string{"Room_1_1", "Room_4_1", "Room_7_1"}, known.IDs)
	s.Equal([]string{"Room_1_1", "Room_7_1"}, known.Free)
}

func TestSpawnerTestSuite(t *testing.T) {
	suite.Run(t, new(SpawnerTestSuite))
}
