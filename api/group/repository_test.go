package group

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

	if err := db.AutoMigrate(&user.UserModel{}, &GroupModel{}, &GroupMemberModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	users := []user.UserModel{
		{Username: "alice", Email: "alice@example.com", Password: "x", FirstName: "Alice", LastName: "A"},
		{Username: "bob", Email: "bob@example.com", Password: "x", FirstName: "Bob", LastName: "B"},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("failed to create users: %v", err)
	}

	provider := database.NewProvider()
	provider.Set(db)
	return NewRepository(provider), users
}

func TestCreateEnrollsCreator(t *testing.T) {
	repo, users := newTestRepo(t)
	alice := users[0]

	g := &GroupModel{Name: "Hikers", CreatedBy: alice.ID}
	if err := repo.Create(g); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if g.MembersCount != 1 {
		t.Errorf("MembersCount = %d, want 1", g.MembersCount)
	}

	isMember, err := repo.IsMember(alice.ID, g.ID)
	if err != nil {
		t.Fatalf("IsMember returned error: %v", err)
	}
	if !isMember {
		t.Error("creator is not a member of the new group")
	}
}

func TestJoinLeaveMaintainsCount(t *testing.T) {
	repo, users := newTestRepo(t)
	alice, bob := users[0], users[1]

	g := &GroupModel{Name: "Hikers", CreatedBy: alice.ID}
	if err := repo.Create(g); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := repo.Join(bob.ID, g.ID); err != nil {
		t.Fatalf("Join returned error: %v", err)
	}
	got, err := repo.GetByID(g.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.MembersCount != 2 {
		t.Errorf("MembersCount after join = %d, want 2", got.MembersCount)
	}

	if err := repo.Leave(bob.ID, g.ID); err != nil {
		t.Fatalf("Leave returned error: %v", err)
	}
	got, err = repo.GetByID(g.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.MembersCount != 1 {
		t.Errorf("MembersCount after leave = %d, want 1", got.MembersCount)
	}

	// Leaving a group the user never joined must not change the count
	if err := repo.Leave(bob.ID, g.ID); err != nil {
		t.Fatalf("second Leave returned error: %v", err)
	}
	got, err = repo.GetByID(g.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.MembersCount != 1 {
		t.Errorf("MembersCount after redundant leave = %d, want 1", got.MembersCount)
	}
}

func TestListPublicExcludesPrivateGroups(t *testing.T) {
	repo, users := newTestRepo(t)
	alice := users[0]

	public := &GroupModel{Name: "Hikers", CreatedBy: alice.ID}
	private := &GroupModel{Name: "Board", CreatedBy: alice.ID, IsPrivate: true}
	for _, g := range []*GroupModel{public, private} {
		if err := repo.Create(g); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	groups, err := repo.ListPublic()
	if err != nil {
		t.Fatalf("ListPublic returned error: %v", err)
	}
	if len(groups) != 1 || groups[0].Name != "Hikers" {
		t.Errorf("ListPublic = %+v, want only the public group", groups)
	}
	if groups[0].Creator.Username != "alice" {
		t.Errorf("creator = %q, want alice", groups[0].Creator.Username)
	}
}
