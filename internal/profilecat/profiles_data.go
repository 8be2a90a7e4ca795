package profilecat

import "github.com/e10lab/din18599/internal/model"

// bacs builds the four-class BACS adaptation vector used by every
// profile, scaled by a profile-specific sensitivity.
func bacs(sensitivity float64) map[model.AutomationClass]model.BACSAdaptation {
	return map[model.AutomationClass]model.BACSAdaptation{
		model.AutomationA: {FAdapt: 1.0, DeltaThetaEMS: 0},
		model.AutomationB: {FAdapt: 1.0 - 0.05*sensitivity, DeltaThetaEMS: 0.2 * sensitivity},
		model.AutomationC: {FAdapt: 1.0 - 0.10*sensitivity, DeltaThetaEMS: 0.5 * sensitivity},
		model.AutomationD: {FAdapt: 1.0 - 0.20*sensitivity, DeltaThetaEMS: 1.0 * sensitivity},
	}
}

// standardProfiles is the embedded, read-only usage-profile catalogue. It
// covers the usage types named in DIN V 18599-10's table family (offices,
// teaching and assembly spaces, healthcare, retail, hospitality, technical
// and circulation areas, residential) as distinct rows with their own
// occupancy density, schedule and setpoints; it is not a row-for-row
// reproduction of every DIN V 18599-10 A.1-A.43 table, and callers should
// not assume a particular total count.
var standardProfiles = buildStandardProfiles()

func buildStandardProfiles() []model.UsageProfile {
	return []model.UsageProfile{
		{
			Key: "1_office", Name: "Single/group office",
			DailyUsageHours: 11, AnnualUsageDays: 250,
			DayStartHour: 7, DayEndHour: 18, DayUsageShare: 0.9, NightUsageShare: 0.1,
			HVACDailyHours: 13, HVACAnnualHours: 250 * 13,
			MaintainedIlluminanceLux: 500, LightingDepreciationFactor: 0.8, LuminousEfficacyLmW: 0,
			OccupancyControl: model.OccupancySensor, ConstantIlluminanceControl: false,
			HeatingSetpointC: 21, CoolingSetpointC: 26, SetbackDeltaK: 4,
			MinOutdoorAirRateM3hm2: 6, HumidityRequirement: "none",
			PeopleGainWhm2Day: 280, EquipGainWhm2Day: 360,
			DHWDemandWhm2Day: 10,
			BACS:             bacs(1.0),
		},
		{
			Key: "2_open_plan_office", Name: "Open-plan office",
			DailyUsageHours: 11, AnnualUsageDays: 250,
			DayStartHour: 7, DayEndHour: 18, DayUsageShare: 0.9, NightUsageShare: 0.1,
			HVACDailyHours: 13, HVACAnnualHours: 250 * 13,
			MaintainedIlluminanceLux: 500, LightingDepreciationFactor: 0.8,
			OccupancyControl: model.OccupancyDual,
			HeatingSetpointC: 21, CoolingSetpointC: 25, SetbackDeltaK: 4,
			MinOutdoorAirRateM3hm2: 8, HumidityRequirement: "none",
			PeopleGainWhm2Day: 340, EquipGainWhm2Day: 420,
			DHWDemandWhm2Day: 10,
			BACS:             bacs(1.0),
		},
		{
			Key: "3_meeting_room", Name: "Meeting, conference room",
			DailyUsageHours: 10, AnnualUsageDays: 240,
			DayStartHour: 8, DayEndHour: 18, DayUsageShare: 0.95, NightUsageShare: 0.05,
			HVACDailyHours: 11, HVACAnnualHours: 240 * 11,
			MaintainedIlluminanceLux: 500, LightingDepreciationFactor: 0.8,
			OccupancyControl: model.OccupancySensor,
			HeatingSetpointC: 21, CoolingSetpointC: 25, SetbackDeltaK: 5,
			MinOutdoorAirRateM3hm2: 15, HumidityRequirement: "none",
			PeopleGainWhm2Day: 500, EquipGainWhm2Day: 150,
			DHWDemandWhm2Day: 5,
			BACS:             bacs(0.9),
		},
		{
			Key: "4_call_center", Name: "Call center / open telephony floor",
			DailyUsageHours: 16, AnnualUsageDays: 300,
			DayStartHour: 6, DayEndHour: 22, DayUsageShare: 0.7, NightUsageShare: 0.3,
			HVACDailyHours: 18, HVACAnnualHours: 300 * 18,
			MaintainedIlluminanceLux: 500, LightingDepreciationFactor: 0.8,
			OccupancyControl: model.OccupancyDual,
			HeatingSetpointC: 21, CoolingSetpointC: 24, SetbackDeltaK: 3,
			MinOutdoorAirRateM3hm2: 10, HumidityRequirement: "none",
			PeopleGainWhm2Day: 420, EquipGainWhm2Day: 520,
			DHWDemandWhm2Day: 8,
			BACS:             bacs(1.0),
		},
		{
			Key: "5_retail", Name: "Retail / sales area",
			DailyUsageHours: 12, AnnualUsageDays: 300,
			DayStartHour: 8, DayEndHour: 20, DayUsageShare: 0.9, NightUsageShare: 0.1,
			HVACDailyHours: 13, HVACAnnualHours: 300 * 13,
			MaintainedIlluminanceLux: 300, LightingDepreciationFactor: 0.75,
			OccupancyControl: model.OccupancyManual,
			HeatingSetpointC: 19, CoolingSetpointC: 26, SetbackDeltaK: 3,
			MinOutdoorAirRateM3hm2: 8, HumidityRequirement: "none",
			PeopleGainWhm2Day: 200, EquipGainWhm2Day: 200,
			DHWDemandWhm2Day: 2,
			BACS:             bacs(0.6),
		},
		{
			Key: "6_department_store", Name: "Department store / mall concourse",
			DailyUsageHours: 13, AnnualUsageDays: 310,
			DayStartHour: 8, DayEndHour: 21, DayUsageShare: 0.95, NightUsageShare: 0.05,
			HVACDailyHours: 15, HVACAnnualHours: 310 * 15,
			MaintainedIlluminanceLux: 500, LightingDepreciationFactor: 0.7,
			OccupancyControl: model.OccupancySensor,
			HeatingSetpointC: 19, CoolingSetpointC: 25, SetbackDeltaK: 3,
			MinOutdoorAirRateM3hm2: 12, HumidityRequirement: "none",
			PeopleGainWhm2Day: 260, EquipGainWhm2Day: 180,
			DHWDemandWhm2Day: 2,
			BACS:             bacs(0.6),
		},
		{
			Key: "7_library_reading_room", Name: "Library reading room",
			DailyUsageHours: 12, AnnualUsageDays: 280,
			DayStartHour: 8, DayEndHour: 20, DayUsageShare: 0.85, NightUsageShare: 0.15,
			HVACDailyHours: 13, HVACAnnualHours: 280 * 13,
			MaintainedIlluminanceLux: 500, LightingDepreciationFactor: 0.85,
			OccupancyControl: model.OccupancySensor,
			HeatingSetpointC: 21, CoolingSetpointC: 25, SetbackDeltaK: 4,
			MinOutdoorAirRateM3hm2: 8, HumidityRequirement: "rh40-60",
			PeopleGainWhm2Day: 150, EquipGainWhm2Day: 90,
			DHWDemandWhm2Day: 1,
			BACS:             bacs(0.6),
		},
		{
			Key: "8_daycare_nursery", Name: "Daycare / nursery room",
			DailyUsageHours: 10, AnnualUsageDays: 250,
			DayStartHour: 7, DayEndHour: 17, DayUsageShare: 1.0, NightUsageShare: 0.0,
			HVACDailyHours: 11, HVACAnnualHours: 250 * 11,
			MaintainedIlluminanceLux: 300, LightingDepreciationFactor: 0.8,
			OccupancyControl: model.OccupancyManual,
			HeatingSetpointC: 21, CoolingSetpointC: 25, SetbackDeltaK: 4,
			MinOutdoorAirRateM3hm2: 25, HumidityRequirement: "none",
			PeopleGainWhm2Day: 500, EquipGainWhm2Day: 50,
			DHWDemandWhm2Day: 15,
			BACS:             bacs(0.6),
		},
		{
			Key: "9_lecture_hall", Name: "Lecture hall / auditorium",
			DailyUsageHours: 12, AnnualUsageDays: 220,
			DayStartHour: 7, DayEndHour: 19, DayUsageShare: 0.95, NightUsageShare: 0.05,
			HVACDailyHours: 14, HVACAnnualHours: 220 * 14,
			MaintainedIlluminanceLux: 300, LightingDepreciationFactor: 0.8,
			OccupancyControl: model.OccupancySensor,
			HeatingSetpointC: 20, CoolingSetpointC: 26, SetbackDeltaK: 6,
			MinOutdoorAirRateM3hm2: 12, HumidityRequirement: "none",
			PeopleGainWhm2Day: 600, EquipGainWhm2Day: 80,
			DHWDemandWhm2Day: 0,
			BACS:             bacs(0.8),
		},
		{
			Key: "10_classroom", Name: "Classroom",
			DailyUsageHours: 9, AnnualUsageDays: 200,
			DayStartHour: 8, DayEndHour: 16, DayUsageShare: 1.0, NightUsageShare: 0.0,
			HVACDailyHours: 9, HVACAnnualHours: 200 * 9,
			MaintainedIlluminanceLux: 300, LightingDepreciationFactor: 0.8,
			OccupancyControl: model.OccupancySensor,
			HeatingSetpointC: 20, CoolingSetpointC: 26, SetbackDeltaK: 6,
			MinOutdoorAirRateM3hm2: 20, HumidityRequirement: "none",
			PeopleGainWhm2Day: 450, EquipGainWhm2Day: 60,
			DHWDemandWhm2Day: 1,
			BACS:             bacs(0.7),
		},
		{
			Key: "11_laboratory", Name: "Teaching / research laboratory",
			DailyUsageHours: 10, AnnualUsageDays: 230,
			DayStartHour: 8, DayEndHour: 18, DayUsageShare: 0.9, NightUsageShare: 0.1,
			HVACDailyHours: 24, HVACAnnualHours: 230 * 24,
			MaintainedIlluminanceLux: 500, LightingDepreciationFactor: 0.8,
			OccupancyControl: model.OccupancyManual,
			HeatingSetpointC: 21, CoolingSetpointC: 24, SetbackDeltaK: 2,
			MinOutdoorAirRateM3hm2: 40, HumidityRequirement: "rh40-60",
			PeopleGainWhm2Day: 220, EquipGainWhm2Day: 400,
			DHWDemandWhm2Day: 20,
			BACS:             bacs(0.4),
		},
		{
			Key: "12_server_room", Name: "Server / IT equipment room",
			DailyUsageHours: 24, AnnualUsageDays: 365,
			DayStartHour: 0, DayEndHour: 24, DayUsageShare: 0.05, NightUsageShare: 0.95,
			HVACDailyHours: 24, HVACAnnualHours: 365 * 24,
			MaintainedIlluminanceLux: 300, LightingDepreciationFactor: 0.9,
			OccupancyControl: model.OccupancySensor,
			HeatingSetpointC: 18, CoolingSetpointC: 22, SetbackDeltaK: 0,
			MinOutdoorAirRateM3hm2: 2, HumidityRequirement: "rh40-60",
			PeopleGainWhm2Day: 10, EquipGainWhm2Day: 3000,
			DHWDemandWhm2Day: 0,
			BACS:             bacs(0.2),
		},
		{
			Key: "13_hospital_ward", Name: "Hospital ward / patient room",
			DailyUsageHours: 24, AnnualUsageDays: 365,
			DayStartHour: 7, DayEndHour: 19, DayUsageShare: 0.6, NightUsageShare: 0.4,
			HVACDailyHours: 24, HVACAnnualHours: 365 * 24,
			MaintainedIlluminanceLux: 300, LightingDepreciationFactor: 0.85,
			OccupancyControl: model.OccupancyManual,
			HeatingSetpointC: 22, CoolingSetpointC: 26, SetbackDeltaK: 1,
			MinOutdoorAirRateM3hm2: 20, HumidityRequirement: "rh40-60",
			PeopleGainWhm2Day: 150, EquipGainWhm2Day: 250,
			DHWDemandWhm2Day: 60,
			BACS:             bacs(0.3),
		},
		{
			Key: "14_operating_room", Name: "Hospital operating room",
			DailyUsageHours: 12, AnnualUsageDays: 300,
			DayStartHour: 7, DayEndHour: 19, DayUsageShare: 0.8, NightUsageShare: 0.2,
			HVACDailyHours: 24, HVACAnnualHours: 300 * 24,
			MaintainedIlluminanceLux: 1000, LightingDepreciationFactor: 0.9,
			OccupancyControl: model.OccupancyManual,
			HeatingSetpointC: 20, CoolingSetpointC: 22, SetbackDeltaK: 0,
			MinOutdoorAirRateM3hm2: 60, HumidityRequirement: "rh40-60",
			PeopleGainWhm2Day: 200, EquipGainWhm2Day: 600,
			DHWDemandWhm2Day: 40,
			BACS:             bacs(0.2),
		},
		{
			Key: "15_examination_room", Name: "Medical examination / treatment room",
			DailyUsageHours: 10, AnnualUsageDays: 280,
			DayStartHour: 8, DayEndHour: 18, DayUsageShare: 0.9, NightUsageShare: 0.1,
			HVACDailyHours: 11, HVACAnnualHours: 280 * 11,
			MaintainedIlluminanceLux: 500, LightingDepreciationFactor: 0.85,
			OccupancyControl: model.OccupancyManual,
			HeatingSetpointC: 22, CoolingSetpointC: 25, SetbackDeltaK: 3,
			MinOutdoorAirRateM3hm2: 20, HumidityRequirement: "rh40-60",
			PeopleGainWhm2Day: 180, EquipGainWhm2Day: 200,
			DHWDemandWhm2Day: 50,
			BACS:             bacs(0.4),
		},
		{
			Key: "16_hotel_room", Name: "Hotel guest room",
			DailyUsageHours: 24, AnnualUsageDays: 365,
			DayStartHour: 7, DayEndHour: 22, DayUsageShare: 0.3, NightUsageShare: 0.7,
			HVACDailyHours: 24, HVACAnnualHours: 365 * 24,
			MaintainedIlluminanceLux: 150, LightingDepreciationFactor: 0.85,
			OccupancyControl: model.OccupancyManual,
			HeatingSetpointC: 20, CoolingSetpointC: 25, SetbackDeltaK: 3,
			MinOutdoorAirRateM3hm2: 4, HumidityRequirement: "none",
			PeopleGainWhm2Day: 80, EquipGainWhm2Day: 90,
			DHWDemandWhm2Day: 70,
			BACS:             bacs(0.5),
		},
		{
			Key: "17_kitchen", Name: "Commercial kitchen",
			DailyUsageHours: 10, AnnualUsageDays: 300,
			DayStartHour: 7, DayEndHour: 17, DayUsageShare: 1.0, NightUsageShare: 0.0,
			HVACDailyHours: 10, HVACAnnualHours: 300 * 10,
			MaintainedIlluminanceLux: 500, LightingDepreciationFactor: 0.75,
			OccupancyControl: model.OccupancyManual,
			HeatingSetpointC: 18, CoolingSetpointC: 27, SetbackDeltaK: 3,
			MinOutdoorAirRateM3hm2: 35, HumidityRequirement: "none",
			PeopleGainWhm2Day: 200, EquipGainWhm2Day: 900,
			DHWDemandWhm2Day: 120,
			BACS:             bacs(0.4),
		},
		{
			Key: "18_canteen", Name: "Canteen / staff restaurant",
			DailyUsageHours: 8, AnnualUsageDays: 260,
			DayStartHour: 11, DayEndHour: 19, DayUsageShare: 0.85, NightUsageShare: 0.15,
			HVACDailyHours: 9, HVACAnnualHours: 260 * 9,
			MaintainedIlluminanceLux: 300, LightingDepreciationFactor: 0.8,
			OccupancyControl: model.OccupancyManual,
			HeatingSetpointC: 20, CoolingSetpointC: 25, SetbackDeltaK: 4,
			MinOutdoorAirRateM3hm2: 20, HumidityRequirement: "none",
			PeopleGainWhm2Day: 350, EquipGainWhm2Day: 150,
			DHWDemandWhm2Day: 35,
			BACS:             bacs(0.5),
		},
		{
			Key: "19_parking_garage", Name: "Enclosed parking garage",
			DailyUsageHours: 24, AnnualUsageDays: 365,
			DayStartHour: 0, DayEndHour: 24, DayUsageShare: 0.5, NightUsageShare: 0.5,
			HVACDailyHours: 24, HVACAnnualHours: 365 * 24,
			MaintainedIlluminanceLux: 75, LightingDepreciationFactor: 0.7,
			OccupancyControl: model.OccupancySensor,
			HeatingSetpointC: 10, CoolingSetpointC: 30, SetbackDeltaK: 0,
			MinOutdoorAirRateM3hm2: 3, HumidityRequirement: "none",
			PeopleGainWhm2Day: 5, EquipGainWhm2Day: 0,
			DHWDemandWhm2Day: 0,
			BACS:             bacs(0.1),
		},
		{
			Key: "20_swimming_pool", Name: "Indoor swimming pool hall",
			DailyUsageHours: 14, AnnualUsageDays: 350,
			DayStartHour: 7, DayEndHour: 21, DayUsageShare: 0.9, NightUsageShare: 0.1,
			HVACDailyHours: 24, HVACAnnualHours: 350 * 24,
			MaintainedIlluminanceLux: 300, LightingDepreciationFactor: 0.75,
			OccupancyControl: model.OccupancyManual,
			HeatingSetpointC: 28, CoolingSetpointC: 32, SetbackDeltaK: 1,
			MinOutdoorAirRateM3hm2: 30, HumidityRequirement: "rh40-60",
			PeopleGainWhm2Day: 140, EquipGainWhm2Day: 60,
			DHWDemandWhm2Day: 30,
			BACS:             bacs(0.3),
		},
		{
			Key: "21_wellness_sauna", Name: "Sauna / wellness suite",
			DailyUsageHours: 10, AnnualUsageDays: 330,
			DayStartHour: 9, DayEndHour: 19, DayUsageShare: 0.9, NightUsageShare: 0.1,
			HVACDailyHours: 12, HVACAnnualHours: 330 * 12,
			MaintainedIlluminanceLux: 100, LightingDepreciationFactor: 0.8,
			OccupancyControl: model.OccupancyManual,
			HeatingSetpointC: 30, CoolingSetpointC: 34, SetbackDeltaK: 2,
			MinOutdoorAirRateM3hm2: 15, HumidityRequirement: "rh40-60",
			PeopleGainWhm2Day: 80, EquipGainWhm2Day: 40,
			DHWDemandWhm2Day: 10,
			BACS:             bacs(0.2),
		},
		{
			Key: "22_warehouse", Name: "Warehouse / storage",
			DailyUsageHours: 8, AnnualUsageDays: 260,
			DayStartHour: 7, DayEndHour: 15, DayUsageShare: 1.0, NightUsageShare: 0.0,
			HVACDailyHours: 8, HVACAnnualHours: 260 * 8,
			MaintainedIlluminanceLux: 150, LightingDepreciationFactor: 0.7,
			OccupancyControl: model.OccupancySensor,
			HeatingSetpointC: 15, CoolingSetpointC: 28, SetbackDeltaK: 8,
			MinOutdoorAirRateM3hm2: 1, HumidityRequirement: "none",
			PeopleGainWhm2Day: 30, EquipGainWhm2Day: 40,
			DHWDemandWhm2Day: 0,
			BACS:             bacs(0.3),
		},
		{
			Key: "23_workshop", Name: "Manufacturing workshop",
			DailyUsageHours: 16, AnnualUsageDays: 260,
			DayStartHour: 6, DayEndHour: 22, DayUsageShare: 0.9, NightUsageShare: 0.1,
			HVACDailyHours: 16, HVACAnnualHours: 260 * 16,
			MaintainedIlluminanceLux: 300, LightingDepreciationFactor: 0.7,
			OccupancyControl: model.OccupancyManual,
			HeatingSetpointC: 16, CoolingSetpointC: 28, SetbackDeltaK: 6,
			MinOutdoorAirRateM3hm2: 10, HumidityRequirement: "none",
			PeopleGainWhm2Day: 120, EquipGainWhm2Day: 800,
			DHWDemandWhm2Day: 5,
			BACS:             bacs(0.3),
		},
		{
			Key: "24_museum_exhibition", Name: "Museum / exhibition hall",
			DailyUsageHours: 9, AnnualUsageDays: 300,
			DayStartHour: 9, DayEndHour: 18, DayUsageShare: 0.9, NightUsageShare: 0.1,
			HVACDailyHours: 24, HVACAnnualHours: 300 * 24,
			MaintainedIlluminanceLux: 200, LightingDepreciationFactor: 0.85,
			OccupancyControl: model.OccupancySensor,
			HeatingSetpointC: 20, CoolingSetpointC: 24, SetbackDeltaK: 1,
			MinOutdoorAirRateM3hm2: 6, HumidityRequirement: "rh40-60",
			PeopleGainWhm2Day: 90, EquipGainWhm2Day: 40,
			DHWDemandWhm2Day: 0,
			BACS:             bacs(0.3),
		},
		{
			Key: "25_theatre_auditorium", Name: "Theatre / concert hall",
			DailyUsageHours: 8, AnnualUsageDays: 200,
			DayStartHour: 14, DayEndHour: 23, DayUsageShare: 0.5, NightUsageShare: 0.5,
			HVACDailyHours: 10, HVACAnnualHours: 200 * 10,
			MaintainedIlluminanceLux: 150, LightingDepreciationFactor: 0.8,
			OccupancyControl: model.OccupancyManual,
			HeatingSetpointC: 20, CoolingSetpointC: 25, SetbackDeltaK: 4,
			MinOutdoorAirRateM3hm2: 15, HumidityRequirement: "none",
			PeopleGainWhm2Day: 650, EquipGainWhm2Day: 100,
			DHWDemandWhm2Day: 0,
			BACS:             bacs(0.5),
		},
		{
			Key: "26_station_concourse", Name: "Transit station concourse",
			DailyUsageHours: 18, AnnualUsageDays: 365,
			DayStartHour: 5, DayEndHour: 23, DayUsageShare: 0.85, NightUsageShare: 0.15,
			HVACDailyHours: 18, HVACAnnualHours: 365 * 18,
			MaintainedIlluminanceLux: 200, LightingDepreciationFactor: 0.7,
			OccupancyControl: model.OccupancySensor,
			HeatingSetpointC: 15, CoolingSetpointC: 28, SetbackDeltaK: 5,
			MinOutdoorAirRateM3hm2: 4, HumidityRequirement: "none",
			PeopleGainWhm2Day: 180, EquipGainWhm2Day: 50,
			DHWDemandWhm2Day: 0,
			BACS:             bacs(0.2),
		},
		{
			Key: "27_assembly_hall", Name: "Church / assembly hall",
			DailyUsageHours: 6, AnnualUsageDays: 150,
			DayStartHour: 9, DayEndHour: 20, DayUsageShare: 0.6, NightUsageShare: 0.4,
			HVACDailyHours: 7, HVACAnnualHours: 150 * 7,
			MaintainedIlluminanceLux: 150, LightingDepreciationFactor: 0.8,
			OccupancyControl: model.OccupancyManual,
			HeatingSetpointC: 16, CoolingSetpointC: 27, SetbackDeltaK: 8,
			MinOutdoorAirRateM3hm2: 8, HumidityRequirement: "none",
			PeopleGainWhm2Day: 300, EquipGainWhm2Day: 20,
			DHWDemandWhm2Day: 0,
			BACS:             bacs(0.2),
		},
		{
			Key: "28_corridor", Name: "Circulation corridor / stairwell",
			DailyUsageHours: 14, AnnualUsageDays: 300,
			DayStartHour: 6, DayEndHour: 20, DayUsageShare: 0.8, NightUsageShare: 0.2,
			HVACDailyHours: 0, HVACAnnualHours: 0,
			MaintainedIlluminanceLux: 100, LightingDepreciationFactor: 0.75,
			OccupancyControl: model.OccupancySensor,
			HeatingSetpointC: 16, CoolingSetpointC: 30, SetbackDeltaK: 6,
			MinOutdoorAirRateM3hm2: 0.5, HumidityRequirement: "none",
			PeopleGainWhm2Day: 20, EquipGainWhm2Day: 0,
			DHWDemandWhm2Day: 0,
			BACS:             bacs(0.1),
		},
		{
			Key: "29_sanitary_room", Name: "Sanitary / WC room",
			DailyUsageHours: 12, AnnualUsageDays: 300,
			DayStartHour: 6, DayEndHour: 18, DayUsageShare: 0.85, NightUsageShare: 0.15,
			HVACDailyHours: 12, HVACAnnualHours: 300 * 12,
			MaintainedIlluminanceLux: 200, LightingDepreciationFactor: 0.75,
			OccupancyControl: model.OccupancySensor,
			HeatingSetpointC: 19, CoolingSetpointC: 28, SetbackDeltaK: 4,
			MinOutdoorAirRateM3hm2: 25, HumidityRequirement: "none",
			PeopleGainWhm2Day: 30, EquipGainWhm2Day: 10,
			DHWDemandWhm2Day: 25,
			BACS:             bacs(0.1),
		},
		{
			Key: "30_gym", Name: "Sports / gymnasium hall",
			DailyUsageHours: 10, AnnualUsageDays: 280,
			DayStartHour: 8, DayEndHour: 22, DayUsageShare: 0.7, NightUsageShare: 0.3,
			HVACDailyHours: 14, HVACAnnualHours: 280 * 14,
			MaintainedIlluminanceLux: 300, LightingDepreciationFactor: 0.75,
			OccupancyControl: model.OccupancySensor,
			HeatingSetpointC: 18, CoolingSetpointC: 27, SetbackDeltaK: 5,
			MinOutdoorAirRateM3hm2: 20, HumidityRequirement: "none",
			PeopleGainWhm2Day: 550, EquipGainWhm2Day: 40,
			DHWDemandWhm2Day: 30,
			BACS:             bacs(0.5),
		},
		{
			Key: "31_plant_room", Name: "Technical / plant room",
			DailyUsageHours: 2, AnnualUsageDays: 260,
			DayStartHour: 8, DayEndHour: 10, DayUsageShare: 1.0, NightUsageShare: 0.0,
			HVACDailyHours: 0, HVACAnnualHours: 0,
			MaintainedIlluminanceLux: 100, LightingDepreciationFactor: 0.7,
			OccupancyControl: model.OccupancyManual,
			HeatingSetpointC: 10, CoolingSetpointC: 32, SetbackDeltaK: 0,
			MinOutdoorAirRateM3hm2: 2, HumidityRequirement: "none",
			PeopleGainWhm2Day: 10, EquipGainWhm2Day: 200,
			DHWDemandWhm2Day: 0,
			BACS:             bacs(0.1),
		},
		{
			Key: "43_res_multi", Name: "Multi-family residential",
			DailyUsageHours: 24, AnnualUsageDays: 365,
			DayStartHour: 7, DayEndHour: 18, DayUsageShare: 0.45, NightUsageShare: 0.55,
			HVACDailyHours: 24, HVACAnnualHours: 365 * 24,
			MaintainedIlluminanceLux: 100, LightingDepreciationFactor: 0.9,
			OccupancyControl: model.OccupancyManual,
			HeatingSetpointC: 20, CoolingSetpointC: 26, SetbackDeltaK: 2,
			MinOutdoorAirRateM3hm2: 0.7, HumidityRequirement: "none",
			PeopleGainWhm2Day: 90, EquipGainWhm2Day: 100,
			DHWDemandWhm2Day: 40,
			BACS:             bacs(0.5),
		},
		{
			Key: "44_res_single", Name: "Single-family residential",
			DailyUsageHours: 24, AnnualUsageDays: 365,
			DayStartHour: 7, DayEndHour: 18, DayUsageShare: 0.4, NightUsageShare: 0.6,
			HVACDailyHours: 24, HVACAnnualHours: 365 * 24,
			MaintainedIlluminanceLux: 100, LightingDepreciationFactor: 0.9,
			OccupancyControl: model.OccupancyManual,
			HeatingSetpointC: 20, CoolingSetpointC: 26, SetbackDeltaK: 2,
			MinOutdoorAirRateM3hm2: 0.7, HumidityRequirement: "none",
			PeopleGainWhm2Day: 100, EquipGainWhm2Day: 120,
			DHWDemandWhm2Day: 45,
			BACS:             bacs(0.5),
		},
	}
}
