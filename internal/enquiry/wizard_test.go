package enquiry

import (
	"context"
	"errors"
	"testing"
)

type fakeSubmitter struct {
	calls    int
	lastVar  Variant
	lastBody Payload
	err      error
}

func (f *fakeSubmitter) SubmitEnquiry(_ context.Context, v Variant, p Payload) error {
	f.calls++
	f.lastVar = v
	f.lastBody = p
	return f.err
}

func validWizard(sub Submitter) *Wizard {
	w := NewWizard(VariantHoliday, "International", sub)
	w.Trip().SetCity(0, "Bali", 3)
	w.Trip().StartCity = "Mumbai"
	w.Trip().TravelDate = "2026-10-01"
	w.Trip().StarRating = "4"
	w.Trip().HolidayType = "Honeymoon"
	return w
}

func fillContact(w *Wizard) {
	w.Contact().FullName = "Asha Rao"
	w.Contact().Email = "asha@example.com"
	w.Contact().Phone = "+91 98765 43210"
}

func TestAdvanceRejectsIncompleteCity(t *testing.T) {
	w := NewWizard(VariantHoliday, "", nil)

	errs := w.Advance()
	if errs["cities"] == "" {
		t.Fatalf("empty destination row should fail the step-one guard, got %v", errs)
	}
	if w.State() != StateStep1 {
		t.Fatalf("guard failure must not leave step one, state=%v", w.State())
	}

	w.Trip().SetCity(0, "Bali", 1)
	w.Trip().StartCity = "Mumbai"
	w.Trip().TravelDate = "2026-10-01"
	w.Trip().StarRating = "4"
	w.Trip().HolidayType = "Beach"

	if errs := w.Advance(); errs != nil {
		t.Fatalf("completed step one should advance, got %v", errs)
	}
	if w.State() != StateStep2 {
		t.Fatalf("expected step two, got %v", w.State())
	}
}

func TestAdvanceMissingStartCityOnlyFlagsStartCity(t *testing.T) {
	w := validWizard(nil)
	w.Trip().StartCity = ""
	before := *w.Trip()

	errs := w.Advance()
	if errs["startCity"] != "Required" {
		t.Fatalf("expected startCity error, got %v", errs)
	}
	if _, ok := errs["travelDate"]; ok {
		t.Fatalf("filled fields must not be flagged: %v", errs)
	}
	if w.State() != StateStep1 {
		t.Fatalf("state should remain step one")
	}
	if got := *w.Trip(); got.TravelDate != before.TravelDate || got.StarRating != before.StarRating {
		t.Fatalf("guard failure mutated unrelated fields")
	}
}

func TestUmrahVariantSkipsHolidayType(t *testing.T) {
	w := NewWizard(VariantUmrah, "Umrah", nil)
	w.Trip().SetCity(0, "Makkah", 5)
	w.Trip().StartCity = "Hyderabad"
	w.Trip().TravelDate = "2026-11-01"
	w.Trip().StarRating = "5"

	if errs := w.Advance(); errs != nil {
		t.Fatalf("umrah variant must not require holiday type, got %v", errs)
	}
}

func TestRoomResizePreservesData(t *testing.T) {
	w := NewWizard(VariantHoliday, "", nil)
	trip := w.Trip()

	trip.SetRoomCount(2)
	trip.AdjustAdults(0, 1)    // room 1: 3 adults
	trip.AdjustChildren(1, 2)  // room 2: 2 children
	trip.SetChildAge(1, 0, "7")

	trip.SetRoomCount(4)
	trip.SetRoomCount(2)

	if len(trip.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(trip.Rooms))
	}
	if trip.Rooms[0].Adults != 3 || trip.Rooms[1].Children != 2 || trip.Rooms[1].ChildAges[0] != "7" {
		t.Fatalf("grow/shrink lost original room data: %+v", trip.Rooms)
	}
}

func TestRoomCountBounds(t *testing.T) {
	w := NewWizard(VariantHoliday, "", nil)
	trip := w.Trip()

	trip.SetRoomCount(0)
	trip.SetRoomCount(7)
	if len(trip.Rooms) != 1 {
		t.Fatalf("out-of-range counts must be ignored, got %d rooms", len(trip.Rooms))
	}
}

func TestChildAgesTrackChildCount(t *testing.T) {
	w := NewWizard(VariantHoliday, "", nil)
	trip := w.Trip()

	trip.AdjustChildren(0, 3)
	trip.SetChildAge(0, 0, "5")
	trip.SetChildAge(0, 1, "9")

	trip.AdjustChildren(0, -2)
	r := trip.Rooms[0]
	if r.Children != 1 || len(r.ChildAges) != 1 || r.ChildAges[0] != "5" {
		t.Fatalf("shrinking children should keep the first age, got %+v", r)
	}

	trip.AdjustChildren(0, 1)
	if len(trip.Rooms[0].ChildAges) != 2 || trip.Rooms[0].ChildAges[1] != "" {
		t.Fatalf("growing children should pad empty age slots, got %+v", trip.Rooms[0])
	}
}

func TestRemoveCityKeepsLastRow(t *testing.T) {
	w := NewWizard(VariantHoliday, "", nil)
	trip := w.Trip()

	if trip.RemoveCity(0) {
		t.Fatalf("the only destination row must not be removable")
	}

	trip.AddCity()
	if !trip.RemoveCity(1) || len(trip.Cities) != 1 {
		t.Fatalf("second row should be removable, got %d rows", len(trip.Cities))
	}
}

func TestSubmitGuardBlocksBadContact(t *testing.T) {
	sub := &fakeSubmitter{}
	w := validWizard(sub)
	if errs := w.Advance(); errs != nil {
		t.Fatalf("setup advance failed: %v", errs)
	}

	w.Contact().FullName = "Asha Rao"
	w.Contact().Email = "not-an-email"
	w.Contact().Phone = "12345"

	errs := w.Submit(context.Background())
	if errs["email"] != "Invalid email" || errs["phone"] != "Invalid number" {
		t.Fatalf("expected email and phone errors, got %v", errs)
	}
	if sub.calls != 0 {
		t.Fatalf("guard failure must not reach the network")
	}
	if w.State() != StateStep2 {
		t.Fatalf("wizard should stay on step two, state=%v", w.State())
	}
}

func TestSubmitSuccess(t *testing.T) {
	sub := &fakeSubmitter{}
	w := validWizard(sub)
	w.Advance()
	fillContact(w)
	w.Contact().Message = "Window seats please"

	if errs := w.Submit(context.Background()); errs != nil {
		t.Fatalf("submit returned guard errors: %v", errs)
	}
	if w.State() != StateSucceeded {
		t.Fatalf("expected success state, got %v", w.State())
	}
	if sub.calls != 1 || sub.lastVar != VariantHoliday {
		t.Fatalf("expected one holiday submission, got %d/%v", sub.calls, sub.lastVar)
	}

	p := sub.lastBody
	if p.Rooms != 1 || p.Adults != 2 || p.Children != 0 {
		t.Fatalf("traveler totals not flattened: %+v", p)
	}
	if p.Cities[0].Destination != "Bali" || p.FullName != "Asha Rao" {
		t.Fatalf("payload lost trip or contact data: %+v", p)
	}

	w.Reset()
	if w.State() != StateStep1 || w.Trip().StartCity != "" || w.Contact().Email != "" {
		t.Fatalf("reset should restore the empty form")
	}
}

func TestSubmitFailureIsRecoverable(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("Enter a valid email.")}
	w := validWizard(sub)
	w.Advance()
	fillContact(w)

	w.Submit(context.Background())
	if w.State() != StateFailed {
		t.Fatalf("expected failed state, got %v", w.State())
	}
	if w.FailureMessage() != "Enter a valid email." {
		t.Fatalf("failure message not surfaced: %q", w.FailureMessage())
	}

	sub.err = nil
	if errs := w.Submit(context.Background()); errs != nil {
		t.Fatalf("resubmit after failure should pass the guard, got %v", errs)
	}
	if w.State() != StateSucceeded || sub.calls != 2 {
		t.Fatalf("resubmission did not recover: state=%v calls=%d", w.State(), sub.calls)
	}
}

func TestBackPreservesData(t *testing.T) {
	w := validWizard(nil)
	w.Advance()
	fillContact(w)

	w.Back()
	if w.State() != StateStep1 {
		t.Fatalf("back should return to step one")
	}
	if w.Trip().StartCity != "Mumbai" || w.Contact().FullName != "Asha Rao" {
		t.Fatalf("back navigation lost entered data")
	}

	if errs := w.Advance(); errs != nil {
		t.Fatalf("re-advance after back failed: %v", errs)
	}
}

// reentrantSubmitter tries to submit again from inside the delivery, which
// is the closest a single-threaded form can get to a double click.
type reentrantSubmitter struct {
	w     *Wizard
	calls int
	inner FieldErrors
}

func (r *reentrantSubmitter) SubmitEnquiry(ctx context.Context, _ Variant, _ Payload) error {
	r.calls++
	r.inner = r.w.Submit(ctx)
	return nil
}

func TestSubmitSingleFlight(t *testing.T) {
	sub := &reentrantSubmitter{}
	w := validWizard(sub)
	sub.w = w
	w.Advance()
	fillContact(w)

	if errs := w.Submit(context.Background()); errs != nil {
		t.Fatalf("outer submit failed the guard: %v", errs)
	}
	if sub.inner["form"] != ErrSubmitInFlight.Error() {
		t.Fatalf("submit while in flight should be refused, got %v", sub.inner)
	}
	if sub.calls != 1 {
		t.Fatalf("exactly one delivery expected, got %d", sub.calls)
	}
	if w.State() != StateSucceeded {
		t.Fatalf("outer submit should still succeed, state=%v", w.State())
	}
}
