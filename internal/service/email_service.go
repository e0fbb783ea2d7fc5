package service

import (
	"crypto/tls"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gopkg.in/mail.v2"

	"smart-mall-backend/config"
	"smart-mall-backend/internal/util"
)

// EmailService 负责发送系统邮件
type EmailService struct {
	smtpHost string
	smtpPort int
	username string
	password string
}

// NewEmailService 创建一个新的 EmailService 实例
func NewEmailService() *EmailService {
	return &EmailService{
		smtpHost: config.AppConfig.SMTPHost,
		smtpPort: config.AppConfig.SMTPPort,
		username: config.AppConfig.SMTPUsername,
		password: config.AppConfig.SMTPPassword,
	}
}

// SendPasswordResetEmail 发送密码重置邮件
func (s *EmailService) SendPasswordResetEmail(email, username, token string) {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", config.AppConfig.FrontendURL, token)

	subject := "重置您的密码"
	body := fmt.Sprintf(
		"亲爱的 %s，\n\n我们收到了您的密码重置请求，请点击以下链接重置密码：\n%s\n\n此链接将在%d分钟后过期。如果这不是您本人的操作，请忽略此邮件。",
		username, resetLink, config.AppConfig.ResetTokenExpireMin)

	s.sendEmailAsync(email, subject, body)
}

func (s *EmailService) sendEmailAsync(to, subject, body string) {
	go func() {
		if err := s.sendEmail(to, subject, body); err != nil {
			util.Logger.Error("异步发送邮件失败", zap.Error(err), zap.String("to", to))
		}
	}()
}

func (s *EmailService) sendEmail(to, subject, body string) error {
	util.Logger.Info("开始发送邮件",
		zap.String("to", to),
		zap.String("subject", subject))

	m := mail.NewMessage()
	m.SetHeader("From", s.username)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := mail.NewDialer(s.smtpHost, s.smtpPort, s.username, s.password)
	d.Timeout = 20 * time.Second
	d.SSL = true
	d.TLSConfig = &tls.Config{InsecureSkipVerify: true}

	if err := d.DialAndSend(m); err != nil {
		util.Logger.Error("发送邮件失败", zap.Error(err))
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	util.Logger.Info("邮件发送成功", zap.String("to", to))
	return nil
}
