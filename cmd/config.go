package cmd

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	CarrierAgency     string
	CarrierDepartment string
	RasterServiceURL  string
	StorefrontURL     string
	TrackingURL       string
	BatchWorkers      string
}
