package zones

// DemandWeight is one cell of the category profile table.
type DemandWeight struct {
	Multiplier float64
	Reason     string
}

// ProfileTable maps normalized category key -> zone profile -> demand weight.
// Immutable after construction.
type ProfileTable map[string]map[string]DemandWeight

// DefaultProfileTable returns the category demand profiles for the Mumbai
// catalog. Keys are lowercase underscore-joined category tokens.
func DefaultProfileTable() ProfileTable {
	return ProfileTable{
		// Retail & Consumer Goods
		"apparel": {
			ProfileResidential: {1.95, "Max Demand: High festive and family shopping surge."},
			ProfileTemple:      {1.45, "High Demand: Peak ethnic and ritual wear demand."},
			ProfileAcademic:    {0.65, "Low Demand: Student focus elsewhere."},
			ProfileCommercial:  {0.45, "Deficit: Weekend-only traffic hub."},
		},
		"footwear": {
			ProfileResidential: {1.60, "High Demand: Regular domestic replenishment."},
			ProfileCommercial:  {1.10, "Stable: Professional footwear needs."},
			ProfileAcademic:    {1.30, "Growth: Student fashion and sports needs."},
		},
		"fashion_accessories": {
			ProfileResidential: {1.40, "Growth: Trend-driven local shopping."},
			ProfileAcademic:    {1.20, "Growth: Youth fashion trends."},
		},
		"stationery": {
			ProfileAcademic:    {1.85, "Max Demand: Exam season and university cluster peak."},
			ProfileResidential: {1.25, "Growth: Home office and student preparation."},
			ProfileCommercial:  {1.10, "Stable: Basic corporate office supplies."},
		},
		"books_magazines": {
			ProfileAcademic:    {1.90, "Max Demand: Textbook and academic resource peak."},
			ProfileResidential: {1.05, "Stable: Casual reading demand."},
		},
		"toys_games": {
			ProfileResidential: {1.75, "High Demand: Family-centric residential area peak."},
		},
		"gifts_handicrafts": {
			ProfileTemple:      {1.80, "Max Demand: Tourist and ritual gifts."},
			ProfileResidential: {1.30, "Growth: Local occasion gifting."},
		},
		// Food & Beverages
		"food_beverages": {
			ProfileResidential: {1.80, "High Demand: Daily household consumption peak."},
			ProfileCommercial:  {1.50, "High Demand: Office lunch and snack trends."},
		},
		"sweets_confectionery": {
			ProfileTemple:      {1.95, "Max Demand: Religious offerings and ritual sweets."},
			ProfileResidential: {1.40, "High Demand: Domestic celebrations."},
		},
		"bakery_products": {
			ProfileResidential: {1.85, "Max Demand: Fresh daily breakfast and snack needs."},
			ProfileCommercial:  {1.35, "Growth: Office tea-time and catering."},
		},
		"dairy_products": {
			ProfileResidential: {1.98, "Max Demand: Critical daily essential in residential clusters."},
		},
		"fruits_vegetables": {
			ProfileResidential: {1.95, "Max Demand: Essential daily fresh produce needs."},
			ProfileTemple:      {1.40, "High Demand: Offerings and fasting requirements."},
		},
		"packaged_food_snacks": {
			ProfileResidential: {1.60, "High Demand: Household pantry stocking."},
			ProfileAcademic:    {1.80, "Max Demand: Student on-the-go snacking."},
		},
		"beverages_tea_coffee_soft_drinks": {
			ProfileCommercial: {1.90, "Max Demand: Corporate beverage consumption surge."},
			ProfileAcademic:   {1.60, "High Demand: Student social clusters."},
		},
		"spices_masalas": {
			ProfileResidential: {1.50, "Growth: Core cooking ingredient needs."},
		},
		// Daily Needs
		"grocery_kirana": {
			ProfileResidential: {1.90, "Max Demand: Hyper-local household restocking."},
			ProfileCommercial:  {0.60, "Low Demand: Limited pantry needs."},
		},
		"household_essentials": {
			ProfileResidential: {1.70, "High Demand: General domestic maintenance."},
		},
		"cleaning_supplies": {
			ProfileResidential: {1.40, "Growth: Regular hygiene maintenance."},
			ProfileCommercial:  {1.65, "High Demand: B2B bulk cleaning requirements."},
		},
		"personal_care_cosmetics": {
			ProfileResidential: {1.55, "High Demand: Individual grooming needs."},
			ProfileCommercial:  {1.10, "Stable: Basic hygiene products."},
		},
		// Electronics & Utilities
		"mobile_accessories": {
			ProfileAcademic:   {1.70, "High Demand: Tech-focused student demographic."},
			ProfileCommercial: {1.55, "High Demand: Corporate mobile maintenance needs."},
		},
		"consumer_electronics": {
			ProfileResidential: {1.30, "Growth: Home appliance upgrades."},
			ProfileCommercial:  {1.10, "Stable: Office IT needs."},
		},
		"electrical_hardware": {
			ProfileCommercial:  {1.80, "Max Demand: Industrial and office maintenance."},
			ProfileResidential: {1.40, "Growth: Home repair spikes."},
		},
		// Health & Lifestyle
		"pharmacy_medical_supplies": {
			ProfileResidential: {1.90, "Max Demand: Essential family healthcare access."},
			ProfileCommercial:  {1.20, "Stable: Emergency and corporate health kits."},
		},
		"fitness_sports_equipment": {
			ProfileAcademic:    {1.45, "Growth: Student athletic activities."},
			ProfileResidential: {1.20, "Stable: Home fitness trends."},
		},
		"wellness_ayurveda": {
			ProfileTemple:      {1.60, "High Demand: Traditional wellness and puja items."},
			ProfileResidential: {1.35, "Growth: Natural health focus."},
		},
		// Specialized / Local
		"jewellery": {
			ProfileTemple:      {1.80, "Max Demand: Traditional wedding and ritual shopping hub."},
			ProfileResidential: {1.10, "Stable: Local festive gift shopping."},
		},
		"furniture_home_decor": {
			ProfileResidential: {1.45, "Growth: Home renovation and move-in trends."},
		},
		"pet_supplies": {
			ProfileResidential: {1.30, "Growth: High pet-ownership in residential pockets."},
		},
		"automobile_accessories": {
			ProfileCommercial: {1.50, "High Demand: Fleet and logistics maintenance."},
		},
		"printing_packaging": {
			ProfileCommercial: {1.95, "Max Demand: Essential corporate and logistics services."},
			ProfileAcademic:   {1.65, "High Demand: Student project and thesis needs."},
		},
		"local_services_repair": {
			ProfileResidential: {1.70, "High Demand: Hyper-local maintenance needs."},
			ProfileCommercial:  {1.50, "High Demand: On-site office repairs."},
		},
	}
}
