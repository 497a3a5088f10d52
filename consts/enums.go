package consts

// SupportedCalculationMethods lists the prayer-time calculation conventions
// accepted at registration. The order matters: a method's position in this
// list is the numeric index sent to the timing service, so entries must not
// be reordered or removed.
var SupportedCalculationMethods = []string{
	"Jafari / Shia Ithna-Ashari",
	"University of Islamic Sciences, Karachi",
	"Islamic Society of North America",
	"Muslim World League",
	"Umm Al-Qura University, Makkah",
	"Egyptian General Authority of Survey",
	"Institute of Geophysics, University of Tehran",
	"Gulf Region",
	"Kuwait",
	"Qatar",
	"Majlis Ugama Islam Singapura, Singapore",
	"Union Organization islamic de France",
	"Diyanet İşleri Başkanlığı, Turkey",
	"Spiritual Administration of Muslims of Russia",
	"Moonsighting Committee Worldwide (also requires shafaq parameter)",
	"Dubai (experimental)",
	"Jabatan Kemajuan Islam Malaysia (JAKIM)",
	"Tunisia",
	"Algeria",
	"KEMENAG - Kementerian Agama Republik Indonesia",
	"Morocco",
	"Comunidade Islamica de Lisboa",
	"Ministry of Awqaf, Islamic Affairs and Holy Places, Jordan ",
}

// DefaultCalculationMethodIndex is used when a masjid carries an
// unrecognized or absent method name (Islamic Society of North America).
const DefaultCalculationMethodIndex = 2

// SupportedServices lists the community services a masjid can advertise.
var SupportedServices = []string{
	"funeral",
	"notary",
	"counseling",
}

// CalculationMethodIndex maps a method name to the index understood by the
// timing service. Unknown names fall back to ISNA.
func CalculationMethodIndex(name string) int {
	for i, m := range SupportedCalculationMethods {
		if m == name {
			return i
		}
	}
	return DefaultCalculationMethodIndex
}

// IsSupportedCalculationMethod reports whether name is in the closed method
// list. An empty name is allowed; the default method applies.
func IsSupportedCalculationMethod(name string) bool {
	if name == "" {
		return true
	}
	for _, m := range SupportedCalculationMethods {
		if m == name {
			return true
		}
	}
	return false
}
