package common

const RedisKeyTokenBlacklist = "token_blacklist"
