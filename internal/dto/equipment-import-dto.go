package dto

type EquipmentImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type EquipmentImportResultDTO struct {
	Created int                       `json:"created"`
	Skipped int                       `json:"skipped"`
	Errors  []EquipmentImportRowError `json:"errors"`
}
