package datastores

// SeedContacts returns sample contacts for an empty store.
func SeedContacts() []*Contact {
	return []*Contact{
		{First: "Shruti", Last: "Kapoor", Twitter: "@shrutikapoor08"},
		{First: "Glenn", Last: "Reyes", Twitter: "@glnnrys"},
		{First: "Ryan", Last: "Florence", Twitter: "@ryanflorence"},
		{First: "Oscar", Last: "Newman", Twitter: "@__oscarnewman"},
		{First: "Michael", Last: "Jackson"},
		{First: "Christopher", Last: "Chedeau", Twitter: "@Vjeux"},
		{First: "Cameron", Last: "Matheson", Twitter: "@cmatheson"},
		{First: "Brooks", Last: "Lybrand", Twitter: "@BrooksLybrand"},
		{First: "Alex", Last: "Anderson", Twitter: "@ralex1993"},
		{First: "Kent C.", Last: "Dodds", Twitter: "@kentcdodds"},
		{First: "Nevi", Last: "Shah", Twitter: "@nevikashah"},
		{First: "Andrew", Last: "Petersen"},
		{First: "Scott", Last: "Smerchek", Twitter: "@smerchek"},
		{First: "Giovanni", Last: "Benussi", Twitter: "@giovannibenussi"},
		{First: "Igor", Last: "Minar", Twitter: "@IgorMinar"},
		{First: "Brandon", Last: "Kish"},
		{First: "Arisa", Last: "Fukuzaki", Twitter: "@arisa_dev"},
		{First: "Alexandra", Last: "Spalato", Twitter: "@alexadark"},
		{First: "Cat", Last: "Johnson"},
		{First: "Ashley", Last: "Narcisse", Twitter: "@_darkfadr"},
		{First: "Edmund", Last: "Hung", Twitter: "@_edmundhung"},
		{First: "Clifford", Last: "Fajardo", Twitter: "@cliffordfajard0"},
		{First: "Erick", Last: "Tamayo", Twitter: "@ericktamayo"},
		{First: "Paul", Last: "Bratslavsky", Twitter: "@codingthirty"},
		{First: "Pedro", Last: "Cattori", Twitter: "@pcattori"},
		{First: "Andre", Last: "Landgraf", Twitter: "@AndreLandgraf94"},
		{First: "Monica", Last: "Powell", Twitter: "@indigitalcolor"},
		{First: "Brian", Last: "Lee", Twitter: "@brian_dlee"},
		{First: "Sean", Last: "McQuaid", Twitter: "@SeanMcQuaidCode"},
		{First: "Shane", Last: "Walker", Twitter: "@swalker326"},
		{First: "Jon", Last: "Jensen", Twitter: "@jenseng"},
	}
}
