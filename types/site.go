package types

// ContactDetails is the contact block shown next to the form.
type ContactDetails struct {
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	OperatingHours string `json:"operating_hours"`
}

// SiteInfo is the metadata the front end renders in its head and footer.
type SiteInfo struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Locale      string         `json:"locale"`
	Version     string         `json:"version"`
	Contact     ContactDetails `json:"contact"`
}

// DefaultSiteInfo returns the published company details. email overrides the
// contact address when set.
func DefaultSiteInfo(version, email string) SiteInfo {
	if email == "" {
		email = "support@lumbunggroup.co.id"
	}
	return SiteInfo{
		Title:       "Lumbung Group - Sinergi Untuk Kemajuan Bersama",
		Description: "A leading Indonesian conglomerate powering progress across logistics, energy, technology, and travel services.",
		Locale:      "id_ID",
		Version:     version,
		Contact: ContactDetails{
			Address:        "Ruko Pariwarna Niaga No. 7, Kota Baru Parahyangan, Kab. Bandung Barat",
			Phone:          "+62 822-888-236",
			Email:          email,
			OperatingHours: "Monday - Friday: 08:00 - 17:00 WIB",
		},
	}
}
