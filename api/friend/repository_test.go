package friend

import (
	"testing"

	"github.com/sociable/sociableapi/api/user"
	"github.com/sociable/sociableapi/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) (*Repository, []user.UserModel) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&user.UserModel{}, &FriendshipModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	users := []user.UserModel{
		{Username: "alice", Email: "alice@example.com", Password: "x", FirstName: "Alice", LastName: "A"},
		{Username: "bob", Email: "bob@example.com", Password: "x", FirstName: "Bob", LastName: "B"},
		{Username: "carol", Email: "carol@example.com", Password: "x", FirstName: "Carol", LastName: "C"},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("failed to create users: %v", err)
	}

	provider := database.NewProvider()
	provider.Set(db)
	return NewRepository(provider), users
}

func TestRequestAndAcceptFlow(t *testing.T) {
	repo, users := newTestRepo(t)
	alice, bob := users[0], users[1]

	err := repo.Create(&FriendshipModel{UserID: alice.ID, FriendID: bob.ID, Status: StatusPending})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// The edge must be visible from both directions
	edge, err := repo.Get(bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if edge == nil || edge.Status != StatusPending {
		t.Fatalf("Get returned %+v, want a pending edge", edge)
	}

	requests, err := repo.Requests(bob.ID)
	if err != nil {
		t.Fatalf("Requests returned error: %v", err)
	}
	if len(requests) != 1 || requests[0].ID != alice.ID {
		t.Fatalf("Requests = %+v, want just alice", requests)
	}

	updated, err := repo.UpdateStatus(alice.ID, bob.ID, StatusAccepted)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if !updated {
		t.Fatal("UpdateStatus did not match the pending edge")
	}

	for _, id := range []uint{alice.ID, bob.ID} {
		friends, err := repo.Friends(id)
		if err != nil {
			t.Fatalf("Friends returned error: %v", err)
		}
		if len(friends) != 1 {
			t.Errorf("Friends(%d) returned %d users, want 1", id, len(friends))
		}
	}

	requests, err = repo.Requests(bob.ID)
	if err != nil {
		t.Fatalf("Requests returned error: %v", err)
	}
	if len(requests) != 0 {
		t.Errorf("Requests after accept = %d, want 0", len(requests))
	}
}

func TestDeclineLeavesNoFriendship(t *testing.T) {
	repo, users := newTestRepo(t)
	alice, bob := users[0], users[1]

	if err := repo.Create(&FriendshipModel{UserID: alice.ID, FriendID: bob.ID, Status: StatusPending}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := repo.UpdateStatus(alice.ID, bob.ID, StatusDeclined)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if !updated {
		t.Fatal("UpdateStatus did not match the pending edge")
	}

	friends, err := repo.Friends(bob.ID)
	if err != nil {
		t.Fatalf("Friends returned error: %v", err)
	}
	if len(friends) != 0 {
		t.Errorf("Friends after decline = %d, want 0", len(friends))
	}
}

func TestUpdateStatusRequiresPendingEdge(t *testing.T) {
	repo, users := newTestRepo(t)
	alice, bob := users[0], users[1]

	updated, err := repo.UpdateStatus(alice.ID, bob.ID, StatusAccepted)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated {
		t.Error("UpdateStatus matched a nonexistent edge")
	}

	// A resolved edge must not be resolvable again
	if err := repo.Create(&FriendshipModel{UserID: alice.ID, FriendID: bob.ID, Status: StatusAccepted}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	updated, err = repo.UpdateStatus(alice.ID, bob.ID, StatusDeclined)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated {
		t.Error("UpdateStatus matched an already accepted edge")
	}
}

func TestSuggestionsExcludeConnectedUsers(t *testing.T) {
	repo, users := newTestRepo(t)
	alice, bob, carol := users[0], users[1], users[2]

	if err := repo.Create(&FriendshipModel{UserID: alice.ID, FriendID: bob.ID, Status: StatusAccepted}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	suggestions, err := repo.Suggestions(alice.ID, 5)
	if err != nil {
		t.Fatalf("Suggestions returned error: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].ID != carol.ID {
		t.Errorf("Suggestions = %+v, want just carol", suggestions)
	}

	// A pending edge in either direction also excludes the user
	if err := repo.Create(&FriendshipModel{UserID: carol.ID, FriendID: alice.ID, Status: StatusPending}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	suggestions, err = repo.Suggestions(alice.ID, 5)
	if err != nil {
		t.Fatalf("Suggestions returned error: %v", err)
	}
	if len(suggestions) != 0 {
		t.Errorf("Suggestions = %d users, want 0", len(suggestions))
	}
}

func TestGetReturnsNilWhenAbsent(t *testing.T) {
	repo, users := newTestRepo(t)

	edge, err := repo.Get(users[0].ID, users[1].ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if edge != nil {
		t.Errorf("Get = %+v, want nil", edge)
	}
}
