package handlers

import (
	"xestetik/internal/config"
	"xestetik/internal/services"
)

const (
	instagramQR = "instagram.png"
	facebookQR  = "facebook.png"
)

// QRTargets lists the QR images shown on the social page
func QRTargets(social config.SocialConfig) []services.QRTarget {
	return []services.QRTarget{
		{File: instagramQR, URL: social.InstagramURL},
		{File: facebookQR, URL: social.FacebookURL},
	}
}
