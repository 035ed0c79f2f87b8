package models

import (
	"log"
	"time"
)

// UsageStatus is a daily snapshot of provisioning activity, written by cron
type UsageStatus struct {
	ID               int
	CreatedAt        time.Time
	InvitesIssued    int // last 24h
	UsersProvisioned int // provisioned through an invite, last 24h
	UsersMonthly     int // provisioned through an invite, last 30d
}

func UsageStatusTask() {
	var issued, daily, monthly int64
	err := DB.Model(&Invite{}).
		Where("created_at between ? and ?", time.Now().Add(-24*time.Hour), time.Now()).
		Count(&issued).Error
	if err != nil {
		log.Println("load issued invites err")
	}
	err = DB.Model(&User{}).
		Where("invite_code <> '' and joined_time between ? and ?", time.Now().Add(-24*time.Hour), time.Now()).
		Count(&daily).Error
	if err != nil {
		log.Println("load daily provisioned users err")
	}
	err = DB.Model(&User{}).
		Where("invite_code <> '' and joined_time between ? and ?", time.Now().AddDate(0, 0, -30), time.Now()).
		Count(&monthly).Error
	if err != nil {
		log.Println("load monthly provisioned users err")
	}

	status := UsageStatus{
		InvitesIssued:    int(issued),
		UsersProvisioned: int(daily),
		UsersMonthly:     int(monthly),
	}
	err = DB.Create(&status).Error
	if err != nil {
		log.Println("save usage status err")
	}
}
