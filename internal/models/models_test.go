package models

import "testing"

func TestMergeHistory(t *testing.T) {
	appointments := []Appointment{
		{ID: 5, Status: StatusApproved},
		{ID: 6, Status: StatusPending},
	}
	prescriptions := []Prescription{
		{ID: 9, AppointmentID: 5, Diagnosis: "Flu", MedicineName: "Oseltamivir", Dosage: "75mg"},
	}

	entries := MergeHistory(appointments, prescriptions)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Appointment.ID != 5 || first.Prescription == nil {
		t.Fatalf("appointment 5 should carry its prescription, got %+v", first)
	}
	if first.Prescription.Diagnosis != "Flu" || first.Prescription.MedicineName != "Oseltamivir" || first.Prescription.Dosage != "75mg" {
		t.Errorf("prescription fields not preserved: %+v", first.Prescription)
	}

	second := entries[1]
	if second.Appointment.ID != 6 || second.Prescription != nil {
		t.Errorf("appointment 6 has no prescription, got %+v", second.Prescription)
	}
}

func TestMergeHistoryNestedAppointmentRef(t *testing.T) {
	// Some upstream endpoints nest the owning appointment instead of
	// sending a bare id.
	appointments := []Appointment{{ID: 7}}
	prescriptions := []Prescription{
		{ID: 1, Appointment: &Appointment{ID: 7}, Diagnosis: "Sprain"},
	}

	entries := MergeHistory(appointments, prescriptions)
	if entries[0].Prescription == nil {
		t.Fatal("expected nested appointment reference to match")
	}
}

func TestMergeHistoryEmpty(t *testing.T) {
	entries := MergeHistory(nil, nil)
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestAllowedActions(t *testing.T) {
	cases := []struct {
		status AppointmentStatus
		want   []AppointmentAction
	}{
		{StatusPending, []AppointmentAction{ActionApprove, ActionReject}},
		{StatusApproved, []AppointmentAction{ActionPrescribe}},
		{StatusRejected, nil},
		{StatusCompleted, nil},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			got := tc.status.AllowedActions()
			if len(got) != len(tc.want) {
				t.Fatalf("AllowedActions(%s) = %v, want %v", tc.status, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("AllowedActions(%s)[%d] = %v, want %v", tc.status, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestIsDoctorTransition(t *testing.T) {
	if !IsDoctorTransition(StatusApproved) || !IsDoctorTransition(StatusRejected) {
		t.Error("doctors approve or reject pending appointments")
	}
	if IsDoctorTransition(StatusPending) || IsDoctorTransition(StatusCompleted) {
		t.Error("reverse and external transitions are never doctor writes")
	}
	if IsDoctorTransition(AppointmentStatus("CANCELLED")) {
		t.Error("unknown statuses are rejected")
	}
}

func TestDashboardPath(t *testing.T) {
	if RoleDoctor.DashboardPath() != "/doctor-dashboard" {
		t.Errorf("doctor path = %s", RoleDoctor.DashboardPath())
	}
	if RoleAdmin.DashboardPath() != "/admin-dashboard" {
		t.Errorf("admin path = %s", RoleAdmin.DashboardPath())
	}
	if RolePatient.DashboardPath() != "/" {
		t.Errorf("patient path = %s", RolePatient.DashboardPath())
	}
}
