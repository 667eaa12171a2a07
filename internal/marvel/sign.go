package marvel

import (
	"crypto/md5"
	"encoding/hex"
)

// sign считает подпись запроса к апстриму: md5(ts + privateKey + publicKey)
// в нижнем регистре. MD5 здесь — требование протокола апстрима для
// аутентификации запросов, а не средство защиты данных. Приватный ключ
// участвует только в дайджесте и никогда не передаётся по сети.
//
// Подпись одноразовая: на каждый исходящий вызов берётся свежий ts.
func sign(ts, privateKey, publicKey string) string {
	sum := md5.Sum([]byte(ts + privateKey + publicKey))
	return hex.EncodeToString(sum[:])
}
