package contacts

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtures(t *testing.T) {
	list := Fixtures()
	require.Len(t, list, 9)

	counts := map[string]int{}
	seen := map[int]bool{}
	for _, c := range list {
		counts[c.Access]++
		assert.False(t, seen[c.ID], "duplicate id %d", c.ID)
		seen[c.ID] = true
	}
	assert.Equal(t, 3, counts[AccessAdmin])
	assert.Equal(t, 2, counts[AccessManager])
	assert.Equal(t, 4, counts[AccessUser])
}

func TestAdd_AppendsPlaceholder(t *testing.T) {
	list := Fixtures()
	got := Add(list, IDPolicyLength)

	require.Len(t, got, 10)
	want := Contact{
		ID:     10,
		Name:   "New Contact 10",
		Email:  "new10@gmail.com",
		Age:    25,
		Phone:  "+91 0000000000",
		Access: AccessUser,
	}
	assert.Equal(t, want, got[9])
	assert.Len(t, list, 9, "input must not grow")
}

func TestAdd_CountAndIDForAnySize(t *testing.T) {
	var list []Contact
	for i := 0; i < 30; i++ {
		next := Add(list, IDPolicyLength)
		require.Len(t, next, len(list)+1)
		assert.Equal(t, len(list)+1, next[len(next)-1].ID)
		list = next
	}
}

func TestAdd_LengthPolicyCollidesAfterDelete(t *testing.T) {
	list := Delete(Fixtures(), 5)
	list = Add(list, IDPolicyLength)

	ids := 0
	for _, c := range list {
		if c.ID == 9 {
			ids++
		}
	}
	assert.Equal(t, 2, ids, "len+1 reuses id 9 after deleting id 5")
}

func TestAdd_NextPolicyNeverCollides(t *testing.T) {
	list := Delete(Fixtures(), 5)
	list = Add(list, IDPolicyNext)
	list = Add(list, IDPolicyNext)

	assert.Equal(t, 10, list[len(list)-2].ID)
	assert.Equal(t, 11, list[len(list)-1].ID)
}

func TestDelete(t *testing.T) {
	list := Fixtures()

	got := Delete(list, 4)
	require.Len(t, got, 8)
	for _, c := range got {
		assert.NotEqual(t, 4, c.ID)
	}
	assert.Len(t, list, 9, "input must not shrink")
}

func TestDelete_AbsentIDIsNoop(t *testing.T) {
	for _, id := range []int{0, -1, 10, 9999} {
		list := Fixtures()
		got := Delete(list, id)
		if diff := cmp.Diff(list, got); diff != "" {
			t.Fatalf("Delete(%d) changed the list (-want +got):\n%s", id, diff)
		}
	}
}

func TestParseIDPolicy(t *testing.T) {
	p, err := ParseIDPolicy("next")
	require.NoError(t, err)
	assert.Equal(t, IDPolicyNext, p)

	p, err = ParseIDPolicy("")
	require.NoError(t, err)
	assert.Equal(t, IDPolicyLength, p)

	_, err = ParseIDPolicy("uuid")
	assert.Error(t, err)
}

func TestStore(t *testing.T) {
	s := NewStore(IDPolicyLength, nil)
	require.Equal(t, 9, s.Len())

	added := s.Add()
	assert.Equal(t, 10, added.ID)
	assert.Equal(t, AccessUser, added.Access)
	assert.Equal(t, 10, s.Len())

	assert.True(t, s.Delete(10))
	assert.False(t, s.Delete(9999))
	assert.Equal(t, 9, s.Len())

	before := s.Contacts()
	assert.False(t, s.Edit(1))
	assert.Equal(t, before, s.Contacts())

	c, ok := s.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Sai", c.Name)
	_, ok = s.Get(42)
	assert.False(t, ok)
}

func TestStore_ContactsReturnsCopy(t *testing.T) {
	s := NewStore(IDPolicyLength, nil)
	list := s.Contacts()
	list[0].Name = "changed"

	c, _ := s.Get(1)
	assert.Equal(t, "Sai Teja", c.Name)
}

func TestContactHelpers(t *testing.T) {
	c := Contact{Name: "Sona", Access: "manager"}
	assert.Equal(t, "S", c.Initial())
	assert.Equal(t, "MANAGER", c.AccessLabel())
	assert.Equal(t, "?", Contact{}.Initial())
	assert.Equal(t, "GUEST", Contact{Access: "guest"}.AccessLabel())
}
