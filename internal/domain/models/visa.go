package models

type Visa struct {
	ID             int64  `json:"id"`
	Country        string `json:"country"`
	Title          string `json:"title"`
	EntryType      string `json:"entry_type"`
	Validity       string `json:"validity"`
	Duration       string `json:"duration"`
	ProcessingTime string `json:"processing_time"`
	CostPrice      int64  `json:"cost_price"`
	ServiceCharge  int64  `json:"service_charge"`
	SellingPrice   int64  `json:"selling_price"`
	// Comma-separated lists, kept as stored.
	DocumentsRequired    string `json:"documents_required,omitempty"`
	PhotographyRequired  string `json:"photography_required,omitempty"`
	VisaType             string `json:"visa_type"`
	CardImage            string `json:"card_image,omitempty"`
	SupplierID           int64  `json:"supplier_id,omitempty"`
	IsActive             bool   `json:"is_active"`
	CreatedAt            string `json:"created_at,omitempty"`
}

type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

type Supplier struct {
	ID            int64    `json:"id"`
	CompanyName   string   `json:"company_name"`
	Services      []string `json:"services"`
	AddressLine1  string   `json:"address_line1"`
	AddressLine2  string   `json:"address_line2,omitempty"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Country       string   `json:"country"`
	ContactNo     string   `json:"contact_no"`
	ContactPerson string   `json:"contact_person"`
}
