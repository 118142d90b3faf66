package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDonationValidate(t *testing.T) {
	ok := Donation{Type: DonationCash, Name: "A", Email: "a@x.com", Amount: 10}
	require.NoError(t, ok.Validate())

	cases := map[string]Donation{
		"missing type":  {Name: "A", Email: "a@x.com"},
		"bad type":      {Type: "stocks", Name: "A", Email: "a@x.com"},
		"missing name":  {Type: DonationItems, Email: "a@x.com"},
		"missing email": {Type: DonationItems, Name: "A"},
	}
	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, d.Validate())
		})
	}
}

func TestVolunteerValidate(t *testing.T) {
	ok := Volunteer{Name: "V", Email: "v@x.com", Type: VolunteerChildren, Message: "hi"}
	require.NoError(t, ok.Validate())

	noPhone := ok
	noPhone.Phone = ""
	require.NoError(t, noPhone.Validate())

	bad := ok
	bad.Type = "pets"
	require.Error(t, bad.Validate())

	bad = ok
	bad.Message = ""
	require.Error(t, bad.Validate())
}

func TestProgramValidate(t *testing.T) {
	ok := Program{
		Title:       "T",
		Description: "D",
		Image:       "img",
		Date:        time.Now(),
		Status:      ProgramActive,
	}
	require.NoError(t, ok.Validate())

	bad := ok
	bad.Status = "Paused"
	require.Error(t, bad.Validate())

	bad = ok
	bad.Date = time.Time{}
	require.Error(t, bad.Validate())
}

func TestAdminValidate(t *testing.T) {
	ok := Admin{Name: "A", Email: "a@x.com", Role: RoleAdmin}
	require.NoError(t, ok.Validate())

	bad := ok
	bad.Role = "Owner"
	require.Error(t, bad.Validate())

	bad = ok
	bad.Email = ""
	require.Error(t, bad.Validate())
}
