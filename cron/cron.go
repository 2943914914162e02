package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"

	"github.com/crewplan/crewplan-api/db"
	"github.com/crewplan/crewplan-api/models"
	"github.com/crewplan/crewplan-api/planner"
	"github.com/crewplan/crewplan-api/utils"
)

// StartCronJobs initializes and starts the background job scheduler
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()

	// Close out punches that were left open, every night at 00:05
	_, err := c.AddFunc("5 0 * * *", closeStalePunches)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	// Weekly call-in digest for owners, Sunday at 07:00
	_, err = c.AddFunc("0 7 * * 0", sendCallInDigests)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started")
}

// closeStalePunches closes yesterday's open punches at the scheduled shift
// end when one is linked, otherwise at the punch-in time for zero hours.
func closeStalePunches() {
	yesterday := time.Now().AddDate(0, 0, -1).Format(planner.DateLayout)

	var punches []models.EmployeePunch
	err := db.DB.Where("date <= ? AND punch_out_time = ?", yesterday, utils.OpenPunchSentinel).
		Find(&punches).Error
	if err != nil {
		log.Printf("Error fetching open punches: %v", err)
		return
	}

	for _, punch := range punches {
		punchOut := punch.PunchInTime
		if punch.ShiftID != nil {
			var shift models.Shift
			if db.DB.First(&shift, *punch.ShiftID).Error == nil && shift.ShiftEnd > punch.PunchInTime {
				punchOut = shift.ShiftEnd
			}
		}
		punchOut = utils.NormalizePunchOut(punchOut)

		worked, err := utils.PunchHours(punch.PunchInTime, punchOut)
		if err != nil {
			log.Printf("Skipping punch %d with bad times: %v", punch.ID, err)
			continue
		}
		_, overtime := utils.OvertimeFor(worked)

		punch.PunchOutTime = punchOut
		punch.OvertimeHours = overtime
		punch.Remarks = "Auto-closed by scheduler"
		if err := db.DB.Save(&punch).Error; err != nil {
			log.Printf("Failed to close punch %d: %v", punch.ID, err)
			continue
		}
		log.Printf("Auto-closed punch %d for employee %d", punch.ID, punch.EmployeeID)
	}
}

// sendCallInDigests emails each organization owner the call-ins from the
// week that just ended.
func sendCallInDigests() {
	cfg := &now.Config{WeekStartDay: time.Sunday}
	lastWeek := time.Now().AddDate(0, 0, -7)
	weekStart := cfg.With(lastWeek).BeginningOfWeek().Format(planner.DateLayout)
	weekEnd := cfg.With(lastWeek).EndOfWeek().Format(planner.DateLayout)

	var orgs []models.Organization
	if err := db.DB.Find(&orgs).Error; err != nil {
		log.Printf("Error fetching organizations for digest: %v", err)
		return
	}

	for _, org := range orgs {
		var callIns []models.Shift
		err := db.DB.Preload("Employee").
			Where("organization_id = ? AND called_in = true AND date >= ? AND date <= ?",
				org.ID, weekStart, weekEnd).
			Order("date asc").
			Find(&callIns).Error
		if err != nil {
			log.Printf("Error fetching call-ins for organization %d: %v", org.ID, err)
			continue
		}
		if len(callIns) == 0 {
			continue
		}

		var owner models.Employee
		if err := db.DB.Where("organization_id = ? AND is_owner = true", org.ID).
			First(&owner).Error; err != nil {
			log.Printf("No owner found for organization %d", org.ID)
			continue
		}

		if err := utils.SendEmail(owner.Email, digestSubject(weekStart, weekEnd), digestBody(callIns)); err != nil {
			log.Printf("Failed to send call-in digest to %s: %v", owner.Email, err)
			continue
		}
		log.Printf("Sent call-in digest for organization %d to %s", org.ID, owner.Email)
	}
}

func digestSubject(weekStart, weekEnd string) string {
	return fmt.Sprintf("Call-in summary for %s to %s", weekStart, weekEnd)
}

func digestBody(callIns []models.Shift) string {
	body := "<p>The following shifts were called in last week:</p><ul>"
	for _, shift := range callIns {
		reason := shift.CallInReason
		if reason == "" {
			reason = "no reason given"
		}
		body += fmt.Sprintf("<li><strong>%s</strong> on %s (%s to %s): %s</li>",
			shift.Employee.FullName, shift.Date, shift.ShiftStart, shift.ShiftEnd, reason)
	}
	body += "</ul><p>Review uncovered shifts in the planner.</p>"
	return body
}
