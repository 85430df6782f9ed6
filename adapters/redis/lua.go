package redisstore

// luaSignup appends an email to a roster after checking existence, duplicate
// membership, and capacity, in that order, all inside one script call.
//
// KEYS[1] = activity meta hash
// KEYS[2] = roster list
// ARGV[1] = email
//
// Returns: new roster length, or -1 (activity missing), -2 (duplicate),
// -3 (full)
const luaSignup = `
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -1
end

local members = redis.call('LRANGE', KEYS[2], 0, -1)
for _, m in ipairs(members) do
  if m == ARGV[1] then
    return -2
  end
end

local max = tonumber(redis.call('HGET', KEYS[1], 'max_participants'))
if #members >= max then
  return -3
end

redis.call('RPUSH', KEYS[2], ARGV[1])
return #members + 1
`

// luaUnregister removes an email from a roster if present.
//
// KEYS[1] = activity meta hash
// KEYS[2] = roster list
// ARGV[1] = email
//
// Returns: new roster length, or -1 (activity missing), -2 (not a member)
const luaUnregister = `
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -1
end

local removed = redis.call('LREM', KEYS[2], 1, ARGV[1])
if removed == 0 then
  return -2
end
return redis.call('LLEN', KEYS[2])
`
