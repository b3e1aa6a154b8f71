package domain

// LoadoutAttachment is an attachment on a loadout item. Attachments do not
// nest any further.
type LoadoutAttachment struct {
	ClassName string `json:"className" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// LoadoutItem is one piece of a trader NPC's outfit. Quantity -1 means
// unlimited. SlotName is empty until assigned manually in the editor and
// must otherwise be one of the known attachment slots.
type LoadoutItem struct {
	ClassName   string              `json:"className" validate:"required"`
	Quantity    int                 `json:"quantity" validate:"min=-1,ne=0"`
	SlotName    string              `json:"slotName" validate:"omitempty,oneof=Shoulder Melee Headgear Mask Eyewear Hands Gloves Armband Vest Body Back Hips Legs Feet"`
	Attachments []LoadoutAttachment `json:"attachments" validate:"dive"`
}

// TraderNpc is a trader placed in the world. NpcID -2 is reserved for the ATM.
type TraderNpc struct {
	NpcID              int           `json:"npcId" validate:"min=-2"`
	ClassName          string        `json:"className"`
	GivenName          string        `json:"givenName"`
	Role               string        `json:"role"`
	Position           [3]float64    `json:"position"`
	Orientation        [3]float64    `json:"orientation"`
	CategoriesID       []string      `json:"categoriesId"`
	CurrenciesAccepted []string      `json:"currenciesAccepted"`
	Loadouts           []LoadoutItem `json:"loadouts" validate:"dive"`
}

// TraderObject is a static prop spawned alongside traders (counters, tents).
type TraderObject struct {
	ClassName   string     `json:"className" validate:"required"`
	Position    [3]float64 `json:"position"`
	Orientation [3]float64 `json:"orientation"`
}

// License is a purchasable trade license. LicenseID is sequential
// ("licence_000", "licence_001", ...), not slug-based.
type License struct {
	LicenseID   string `json:"licenseId" validate:"required"`
	LicenseName string `json:"licenseName" validate:"required"`
	Description string `json:"description"`
}

// AcceptedStates controls which item conditions traders accept and the
// price coefficient applied per condition.
type AcceptedStates struct {
	Worn                    bool    `json:"worn"`
	Damaged                 bool    `json:"damaged"`
	BadlyDamaged            bool    `json:"badly_damaged"`
	CoefficientWorn         float64 `json:"coefficientWorn" validate:"min=0,max=1"`
	CoefficientDamaged      float64 `json:"coefficientDamaged" validate:"min=0,max=1"`
	CoefficientBadlyDamaged float64 `json:"coefficientBadlyDamaged" validate:"min=0,max=1"`
}

// GeneralSettings is the emitted GeneralSettings.json document.
type GeneralSettings struct {
	Version        string         `json:"version"`
	ServerID       string         `json:"serverID" validate:"required"`
	Licenses       []License      `json:"licenses" validate:"dive"`
	AcceptedStates AcceptedStates `json:"acceptedStates"`
	Traders        []TraderNpc    `json:"traders" validate:"dive"`
	TraderObjects  []TraderObject `json:"traderObjects" validate:"dive"`
}
