package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/placementkit/readiness-panel/database"
	"github.com/placementkit/readiness-panel/database/model"
	"github.com/placementkit/readiness-panel/logger"
	"github.com/placementkit/readiness-panel/util/common"
	"github.com/placementkit/readiness-panel/util/random"
	"github.com/placementkit/readiness-panel/web/entity"
)

var defaultValueMap = map[string]string{
	"webListen":        "",
	"webPort":          "8080",
	"webBasePath":      "/",
	"sessionMaxAge":    "60",
	"secret":           random.Seq(32),
	"timeLocation":     "Local",
	"resumeKeywords":   "python,java,sql,machine learning,data science,deep learning,flask,opencv",
	"resumeMultiplier": "15",
}

// SettingService reads and writes runtime panel settings stored in the
// settings table, falling back to defaultValueMap for unset keys.
type SettingService struct{}

func (s *SettingService) GetAllSetting() (*entity.AllSetting, error) {
	port, err := s.GetPort()
	if err != nil {
		return nil, err
	}
	listen, err := s.GetListen()
	if err != nil {
		return nil, err
	}
	basePath, err := s.GetBasePath()
	if err != nil {
		return nil, err
	}
	sessionMaxAge, err := s.GetSessionMaxAge()
	if err != nil {
		return nil, err
	}
	timeLocation, err := s.getString("timeLocation")
	if err != nil {
		return nil, err
	}
	resumeKeywords, err := s.getString("resumeKeywords")
	if err != nil {
		return nil, err
	}
	resumeMultiplier, err := s.GetResumeMultiplier()
	if err != nil {
		return nil, err
	}

	return &entity.AllSetting{
		WebListen:        listen,
		WebPort:          port,
		WebBasePath:      basePath,
		SessionMaxAge:    sessionMaxAge,
		TimeLocation:     timeLocation,
		ResumeKeywords:   resumeKeywords,
		ResumeMultiplier: resumeMultiplier,
	}, nil
}

func (s *SettingService) UpdateAllSetting(allSetting *entity.AllSetting) error {
	if err := allSetting.CheckValid(); err != nil {
		return err
	}

	return common.Combine(
		s.setString("webListen", allSetting.WebListen),
		s.setInt("webPort", allSetting.WebPort),
		s.setString("webBasePath", allSetting.WebBasePath),
		s.setInt("sessionMaxAge", allSetting.SessionMaxAge),
		s.setString("timeLocation", allSetting.TimeLocation),
		s.setString("resumeKeywords", allSetting.ResumeKeywords),
		s.setInt("resumeMultiplier", allSetting.ResumeMultiplier),
	)
}

func (s *SettingService) ResetSettings() error {
	db := database.GetDB()
	return db.Where("1 = 1").Delete(model.Setting{}).Error
}

func (s *SettingService) getSetting(key string) (*model.Setting, error) {
	db := database.GetDB()
	setting := &model.Setting{}
	err := db.Model(model.Setting{}).Where("key = ?", key).First(setting).Error
	if err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *SettingService) saveSetting(key string, value string) error {
	setting, err := s.getSetting(key)
	db := database.GetDB()
	if database.IsNotFound(err) {
		return db.Create(&model.Setting{
			Key:   key,
			Value: value,
		}).Error
	} else if err != nil {
		return err
	}
	setting.Key = key
	setting.Value = value
	return db.Save(setting).Error
}

func (s *SettingService) getString(key string) (string, error) {
	setting, err := s.getSetting(key)
	if database.IsNotFound(err) {
		value, ok := defaultValueMap[key]
		if !ok {
			return "", common.NewErrorf("key <%v> not in defaultValueMap", key)
		}
		return value, nil
	} else if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (s *SettingService) setString(key string, value string) error {
	return s.saveSetting(key, value)
}

func (s *SettingService) getInt(key string) (int, error) {
	str, err := s.getString(key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(str)
}

func (s *SettingService) setInt(key string, value int) error {
	return s.setString(key, strconv.Itoa(value))
}

func (s *SettingService) GetListen() (string, error) {
	return s.getString("webListen")
}

func (s *SettingService) SetListen(ip string) error {
	return s.setString("webListen", ip)
}

func (s *SettingService) GetPort() (int, error) {
	return s.getInt("webPort")
}

func (s *SettingService) SetPort(port int) error {
	return s.setInt("webPort", port)
}

func (s *SettingService) GetBasePath() (string, error) {
	basePath, err := s.getString("webBasePath")
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath, nil
}

func (s *SettingService) GetSessionMaxAge() (int, error) {
	return s.getInt("sessionMaxAge")
}

func (s *SettingService) GetSecret() ([]byte, error) {
	secret, err := s.getString("secret")
	if secret == defaultValueMap["secret"] {
		err := s.saveSetting("secret", secret)
		if err != nil {
			logger.Warning("save secret failed:", err)
		}
	}
	return []byte(secret), err
}

func (s *SettingService) GetTimeLocation() (*time.Location, error) {
	l, err := s.getString("timeLocation")
	if err != nil {
		return nil, err
	}
	location, err := time.LoadLocation(l)
	if err != nil {
		defaultLocation := defaultValueMap["timeLocation"]
		location, err = time.LoadLocation(defaultLocation)
	}
	return location, err
}

// GetResumeKeywords returns the configured resume keyword list, trimmed and
// with empty entries dropped.
func (s *SettingService) GetResumeKeywords() ([]string, error) {
	raw, err := s.getString("resumeKeywords")
	if err != nil {
		return nil, err
	}
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			keywords = append(keywords, part)
		}
	}
	return keywords, nil
}

func (s *SettingService) GetResumeMultiplier() (int, error) {
	return s.getInt("resumeMultiplier")
}

func (s *SettingService) SetResumeMultiplier(multiplier int) error {
	return s.setInt("resumeMultiplier", multiplier)
}
