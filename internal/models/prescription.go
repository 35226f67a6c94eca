package models

// Prescription is the clinical record a doctor attaches to one treated
// appointment. Notes carries the upstream's drug-database annotation when
// the medicine was found there. The upstream serializes the owning
// appointment either as a nested object or as a bare id depending on the
// endpoint, so both are modeled.
type Prescription struct {
	ID            int64        `json:"id"`
	AppointmentID int64        `json:"appointmentId,omitempty"`
	Appointment   *Appointment `json:"appointment,omitempty"`
	Diagnosis     string       `json:"diagnosis"`
	MedicineName  string       `json:"medicineName"`
	Dosage        string       `json:"dosage"`
	Notes         string       `json:"notes,omitempty"`
}

// AppointmentRef resolves the id of the appointment this prescription
// belongs to, whichever form the upstream used.
func (p *Prescription) AppointmentRef() int64 {
	if p.AppointmentID != 0 {
		return p.AppointmentID
	}
	if p.Appointment != nil {
		return p.Appointment.ID
	}
	return 0
}

// AppointmentHistoryEntry is one card in the patient history view: the
// appointment plus its prescription when one references it.
type AppointmentHistoryEntry struct {
	Appointment  Appointment   `json:"appointment"`
	Prescription *Prescription `json:"prescription,omitempty"`
}

// MergeHistory joins appointments with prescriptions by appointment id.
// Linear scan per appointment; per-patient lists are small.
func MergeHistory(appointments []Appointment, prescriptions []Prescription) []AppointmentHistoryEntry {
	entries := make([]AppointmentHistoryEntry, 0, len(appointments))
	for _, appt := range appointments {
		entry := AppointmentHistoryEntry{Appointment: appt}
		for i := range prescriptions {
			if prescriptions[i].AppointmentRef() == appt.ID {
				entry.Prescription = &prescriptions[i]
				break
			}
		}
		entries = append(entries, entry)
	}
	return entries
}
