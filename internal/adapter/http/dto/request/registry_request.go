package request

type CreateCustomerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
}

type CreateVehicleRequest struct {
	CustomerID   string `json:"customer_id" binding:"required"`
	Make         string `json:"make" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Year         int    `json:"year" binding:"required"`
	Color        string `json:"color"`
	VIN          string `json:"vin"`
	LicensePlate string `json:"license_plate"`
	Mileage      int    `json:"mileage"`
	EngineType   string `json:"engine_type"`
}

type CreateInsuranceCompanyRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone" binding:"required"`
}
