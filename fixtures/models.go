/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fixtures

import "github.com/suparena/recordstore/registry"

// Entity names used by the dashboard's stores.
const (
	EntityPatient        = "Patient"
	EntityPhysicianGroup = "PhysicianGroup"
	EntityAgency         = "Agency"
	EntityDocument       = "Document"
)

func init() {
	registry.RegisterType[Patient](EntityPatient)
	registry.RegisterType[PhysicianGroup](EntityPhysicianGroup)
	registry.RegisterType[Agency](EntityAgency)
	registry.RegisterType[Document](EntityDocument)
}

// Patient is a home-health patient.
type Patient struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Status           string `json:"status"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	PhysicianGroupID string `json:"physician_group_id,omitempty"`
	AgencyID         string `json:"agency_id,omitempty"`
	PrimaryDiagnosis string `json:"primary_diagnosis,omitempty"`
	Visits           int    `json:"visits"`
	CreatedDate      string `json:"created_date,omitempty"`
	UpdatedDate      string `json:"updated_date,omitempty"`
}

// PhysicianGroup is a referring physician practice.
type PhysicianGroup struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialty      string `json:"specialty,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	ActivePatients int    `json:"active_patients"`
	CreatedDate    string `json:"created_date,omitempty"`
	UpdatedDate    string `json:"updated_date,omitempty"`
}

// Agency is a home-health agency.
type Agency struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	StarRating   float64  `json:"star_rating"`
	ServiceLines []string `json:"service_lines,omitempty"`
	CreatedDate  string   `json:"created_date,omitempty"`
	UpdatedDate  string   `json:"updated_date,omitempty"`
}

// Document is a clinical or billing document attached to a patient.
type Document struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Kind        string `json:"kind"`
	PatientID   string `json:"patient_id"`
	Status      string `json:"status"`
	Pages       int    `json:"pages"`
	CreatedDate string `json:"created_date,omitempty"`
	UpdatedDate string `json:"updated_date,omitempty"`
}
